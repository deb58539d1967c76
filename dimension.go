package sidim

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gurre/sidim/internal/obs"
)

// baseDimensionCount is the number of SI base dimensions: length, mass,
// time, current, temperature, amount of substance, luminous intensity.
const baseDimensionCount = 7

const (
	baseLength = iota
	baseMass
	baseTime
	baseCurrent
	baseTemperature
	baseAmount
	baseLuminous
)

// baseSymbols are the canonical one-letter (or Greek) symbols used to
// render a Dimension's canonical symbol, in declared base order.
var baseSymbols = [baseDimensionCount]string{"L", "M", "T", "I", "Θ", "N", "J"}

// Dimension is a rational product of the seven SI base dimensions,
// represented as two parallel exponent arrays rather than a single
// signed array so that an "unreduced" dimensionality such as m/m can be
// distinguished from the dimensionless unit. Dimension values are
// interned: two Dimensions with equal exponents are always the same
// pointer, so identity comparison (==) is a valid equality check.
type Dimension struct {
	numExp [baseDimensionCount]uint8
	denExp [baseDimensionCount]uint8
	symbol string
}

// NumExponent returns the numerator exponent of base dimension i.
func (d *Dimension) NumExponent(i int) int { return int(d.numExp[i]) }

// DenExponent returns the denominator exponent of base dimension i.
func (d *Dimension) DenExponent(i int) int { return int(d.denExp[i]) }

// ReducedExponent returns num_exp[i] - den_exp[i], the signed exponent
// of base dimension i after collapsing numerator/denominator overlap.
func (d *Dimension) ReducedExponent(i int) int {
	return int(d.numExp[i]) - int(d.denExp[i])
}

// Symbol returns the canonical human-readable symbol for d, as produced
// at construction time by the rules in canonicalDimensionSymbol.
func (d *Dimension) Symbol() string { return d.symbol }

// String implements fmt.Stringer.
func (d *Dimension) String() string { return d.symbol }

// IsDimensionless reports whether every reduced exponent is zero.
func (d *Dimension) IsDimensionless() bool {
	for i := 0; i < baseDimensionCount; i++ {
		if d.ReducedExponent(i) != 0 {
			return false
		}
	}
	return true
}

// IsDimensionlessAndNotDerived reports whether every numerator and
// denominator exponent is zero, i.e. d was never the result of an
// operation that left cancellable residue (e.g. m/m is dimensionless
// but not IsDimensionlessAndNotDerived).
func (d *Dimension) IsDimensionlessAndNotDerived() bool {
	for i := 0; i < baseDimensionCount; i++ {
		if d.numExp[i] != 0 || d.denExp[i] != 0 {
			return false
		}
	}
	return true
}

// IsBaseDimensionality reports whether d is exactly one base dimension
// raised to the first power, e.g. length or mass alone.
func (d *Dimension) IsBaseDimensionality() bool {
	found := false
	for i := 0; i < baseDimensionCount; i++ {
		switch d.ReducedExponent(i) {
		case 0:
			continue
		case 1:
			if found {
				return false
			}
			found = true
		default:
			return false
		}
	}
	return found
}

// CanBeReduced reports whether some base dimension has nonzero exponent
// on both the numerator and denominator side.
func (d *Dimension) CanBeReduced() bool {
	for i := 0; i < baseDimensionCount; i++ {
		if d.numExp[i] != 0 && d.denExp[i] != 0 {
			return true
		}
	}
	return false
}

// Equals reports whether d and other are the same interned Dimension.
func (d *Dimension) Equals(other *Dimension) bool {
	return d == other
}

// HasSameReducedDimensionality reports whether d and other describe the
// same physical dimension once both are collapsed to reduced form.
func (d *Dimension) HasSameReducedDimensionality(other *Dimension) bool {
	if d == other {
		return true
	}
	for i := 0; i < baseDimensionCount; i++ {
		if d.ReducedExponent(i) != other.ReducedExponent(i) {
			return false
		}
	}
	return true
}

// dimensionIntern is the process-wide table of interned Dimensions,
// keyed by canonical symbol as required by spec: equivalent exponents
// always resolve to the same instance.
type dimensionIntern struct {
	mu    sync.RWMutex
	byKey map[string]*Dimension
}

var dimensions = &dimensionIntern{byKey: make(map[string]*Dimension)}

// internDimension returns the unique *Dimension for the given exponent
// arrays, creating and registering it on first use.
func internDimension(numExp, denExp [baseDimensionCount]uint8) *Dimension {
	symbol := canonicalDimensionSymbol(numExp, denExp)

	dimensions.mu.RLock()
	if d, ok := dimensions.byKey[symbol]; ok {
		dimensions.mu.RUnlock()
		return d
	}
	dimensions.mu.RUnlock()

	dimensions.mu.Lock()
	defer dimensions.mu.Unlock()
	if d, ok := dimensions.byKey[symbol]; ok {
		return d
	}
	d := &Dimension{numExp: numExp, denExp: denExp, symbol: symbol}
	dimensions.byKey[symbol] = d
	obs.Debugf("sidim: interned dimension %q", symbol)
	return d
}

// NewDimension interns a Dimension directly from unreduced numerator
// and denominator exponent arrays. Most callers want one of the
// package-level base dimensions or a quantity looked up from the
// registry instead of calling this directly.
func NewDimension(numExp, denExp [baseDimensionCount]int) *Dimension {
	var nu, de [baseDimensionCount]uint8
	for i := 0; i < baseDimensionCount; i++ {
		if numExp[i] > 0 {
			nu[i] = uint8(numExp[i])
		}
		if denExp[i] > 0 {
			de[i] = uint8(denExp[i])
		}
	}
	return internDimension(nu, de)
}

// newBaseDimension interns a single base dimension raised to the first
// power, e.g. length or mass.
func newBaseDimension(index int) *Dimension {
	var num [baseDimensionCount]uint8
	num[index] = 1
	return internDimension(num, [baseDimensionCount]uint8{})
}

// Package-level base dimensions, analogous to the teacher's exported
// Length/Mass/... Dimension values but backed by the interning table.
var (
	DimensionLength        = newBaseDimension(baseLength)
	DimensionMass          = newBaseDimension(baseMass)
	DimensionTime          = newBaseDimension(baseTime)
	DimensionCurrent       = newBaseDimension(baseCurrent)
	DimensionTemperature   = newBaseDimension(baseTemperature)
	DimensionAmount        = newBaseDimension(baseAmount)
	DimensionLuminous      = newBaseDimension(baseLuminous)
	DimensionDimensionless = internDimension([baseDimensionCount]uint8{}, [baseDimensionCount]uint8{})
)

// MultiplyDimensionsWithoutReducing adds exponents position-wise
// without collapsing numerator/denominator overlap.
func MultiplyDimensionsWithoutReducing(a, b *Dimension) *Dimension {
	var nu, de [baseDimensionCount]uint8
	for i := 0; i < baseDimensionCount; i++ {
		nu[i] = a.numExp[i] + b.numExp[i]
		de[i] = a.denExp[i] + b.denExp[i]
	}
	return internDimension(nu, de)
}

// MultiplyDimensions multiplies a and b and reduces the result.
func MultiplyDimensions(a, b *Dimension) *Dimension {
	return MultiplyDimensionsWithoutReducing(a, b).Reduce()
}

// DivideDimensionsWithoutReducing swaps b's numerator/denominator into
// a's without collapsing overlap.
func DivideDimensionsWithoutReducing(a, b *Dimension) *Dimension {
	var nu, de [baseDimensionCount]uint8
	for i := 0; i < baseDimensionCount; i++ {
		nu[i] = a.numExp[i] + b.denExp[i]
		de[i] = a.denExp[i] + b.numExp[i]
	}
	return internDimension(nu, de)
}

// DivideDimensions divides a by b and reduces the result.
func DivideDimensions(a, b *Dimension) *Dimension {
	return DivideDimensionsWithoutReducing(a, b).Reduce()
}

// PowerDimensionWithoutReducing raises a to an integer power p without
// collapsing numerator/denominator overlap.
func PowerDimensionWithoutReducing(a *Dimension, p int) *Dimension {
	if p == 0 {
		return DimensionDimensionless
	}
	var nu, de [baseDimensionCount]uint8
	if p > 0 {
		for i := 0; i < baseDimensionCount; i++ {
			nu[i] = a.numExp[i] * uint8(p)
			de[i] = a.denExp[i] * uint8(p)
		}
	} else {
		n := uint8(-p)
		for i := 0; i < baseDimensionCount; i++ {
			nu[i] = a.denExp[i] * n
			de[i] = a.numExp[i] * n
		}
	}
	return internDimension(nu, de)
}

// PowerDimension raises a to an integer power and reduces the result.
func PowerDimension(a *Dimension, p int) *Dimension {
	return PowerDimensionWithoutReducing(a, p).Reduce()
}

// Reduce returns the Dimension whose exponents are the reduced form of
// d: for each base, at most one of (num, den) is nonzero.
func (d *Dimension) Reduce() *Dimension {
	var nu, de [baseDimensionCount]uint8
	for i := 0; i < baseDimensionCount; i++ {
		diff := int(d.numExp[i]) - int(d.denExp[i])
		if diff > 0 {
			nu[i] = uint8(diff)
		} else if diff < 0 {
			de[i] = uint8(-diff)
		}
	}
	return internDimension(nu, de)
}

// NthRootDimension computes the dimensionality of the nth root of a,
// failing with KindNonIntegerPower when the reduced exponents are not
// evenly divisible by n.
func NthRootDimension(a *Dimension, n int) (*Dimension, error) {
	if n == 0 {
		return nil, newError(KindDomain, "0th root is undefined")
	}
	if n == 1 {
		return a, nil
	}
	reduced := a.Reduce()
	for i := 0; i < baseDimensionCount; i++ {
		if reduced.numExp[i]%uint8(absInt(n)) != 0 || reduced.denExp[i]%uint8(absInt(n)) != 0 {
			return nil, newError(KindNonIntegerPower,
				"dimension %q is not evenly divisible by %d", a.symbol, n)
		}
	}
	var nu, de [baseDimensionCount]uint8
	absN := uint8(absInt(n))
	for i := 0; i < baseDimensionCount; i++ {
		if a.numExp[i]%absN != 0 || a.denExp[i]%absN != 0 {
			return nil, newError(KindNonIntegerPower,
				"dimension %q has unreduced exponents not evenly divisible by %d", a.symbol, n)
		}
		nu[i] = a.numExp[i] / absN
		de[i] = a.denExp[i] / absN
	}
	if n < 0 {
		nu, de = de, nu
	}
	return internDimension(nu, de), nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// canonicalDimensionSymbol implements the symbol-building rule from
// spec.md §4.1: iterate bases in declared order, emit S or S^e for
// nonzero exponents, join numerator terms and denominator terms with
// "•", and parenthesize the denominator when it has more than one term.
func canonicalDimensionSymbol(numExp, denExp [baseDimensionCount]uint8) string {
	var numTerms, denTerms []string
	for i := 0; i < baseDimensionCount; i++ {
		if numExp[i] > 0 {
			numTerms = append(numTerms, dimensionTerm(baseSymbols[i], int(numExp[i])))
		}
	}
	for i := 0; i < baseDimensionCount; i++ {
		if denExp[i] > 0 {
			denTerms = append(denTerms, dimensionTerm(baseSymbols[i], int(denExp[i])))
		}
	}

	switch {
	case len(numTerms) == 0 && len(denTerms) == 0:
		return "1"
	case len(numTerms) > 0 && len(denTerms) == 0:
		return strings.Join(numTerms, "•")
	case len(numTerms) == 0 && len(denTerms) > 0:
		den := strings.Join(denTerms, "•")
		if len(denTerms) > 1 {
			den = "(" + den + ")"
		}
		return "(1/" + den + ")"
	default:
		num := strings.Join(numTerms, "•")
		den := strings.Join(denTerms, "•")
		if len(denTerms) > 1 {
			den = "(" + den + ")"
		}
		return num + "/" + den
	}
}

func dimensionTerm(symbol string, exp int) string {
	if exp == 1 {
		return symbol
	}
	return symbol + "^" + strconv.Itoa(exp)
}
