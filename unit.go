package sidim

import "math"

// Unit is an immutable, interned record describing a named or
// synthesized measurement unit: its Dimension, its scale factor to the
// coherent SI unit of that Dimension, and the canonical symbol under
// which it is registered. Units are owned by the registry; callers
// never construct or free one directly. The one Unit the package hands
// out without registering it is the copy attached by Scalar.ReduceUnit.
type Unit struct {
	dimension  *Dimension
	scale      float64
	symbol     string
	name       string
	pluralName string
}

// Dimension returns the unit's dimensionality.
func (u *Unit) Dimension() *Dimension { return u.dimension }

// Scale returns the multiplier that converts a numeric value expressed
// in u into the coherent SI unit of the same dimensionality.
func (u *Unit) Scale() float64 { return u.scale }

// Symbol returns the canonical library key under which u is interned.
func (u *Unit) Symbol() string { return u.symbol }

// Name returns the unit's singular display name, or "" if unnamed.
func (u *Unit) Name() string { return u.name }

// PluralName returns the unit's plural display name, falling back to
// Name (and then Symbol) when no plural was registered.
func (u *Unit) PluralName() string {
	if u.pluralName != "" {
		return u.pluralName
	}
	if u.name != "" {
		return u.name
	}
	return u.symbol
}

// String implements fmt.Stringer, returning the canonical symbol.
func (u *Unit) String() string { return u.symbol }

// Equals reports whether u and other are the same interned Unit.
func (u *Unit) Equals(other *Unit) bool { return u == other }

// IsEquivalentTo reports whether u and other have equal dimensionality
// and equal scale, without requiring pointer identity. Two interned
// Units can be equivalent without being equal when the registry seeds
// multiple aliases for the same physical unit (e.g. distinct mol/L
// spellings).
func (u *Unit) IsEquivalentTo(other *Unit) bool {
	if u == other {
		return true
	}
	if u.dimension != other.dimension {
		return false
	}
	return nearlyEqualRelative(u.scale, other.scale, 1e-9)
}

// IsCoherentSI reports whether u is the coherent SI unit of its
// dimensionality, i.e. its scale to itself is 1.
func (u *Unit) IsCoherentSI() bool {
	return nearlyEqualRelative(u.scale, 1.0, 1e-12)
}

func nearlyEqualRelative(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff < tolerance
	}
	return diff/largest < tolerance
}
