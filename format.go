package sidim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders s as a value followed by its unit symbol, e.g.
// "9.8 m/s^2". The coherent dimensionless unit is rendered with no
// trailing symbol.
func (s *Scalar) String() string {
	valueStr := formatScalarValue(s)
	if s.unit == nil || s.unit.symbol == "1" {
		return valueStr
	}
	return valueStr + " " + s.unit.symbol
}

func formatScalarValue(s *Scalar) string {
	switch s.kind {
	case KindFloat32:
		return strconv.FormatFloat(float64(s.f32), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(s.f64, 'g', -1, 64)
	case KindComplex64:
		return formatComplex(complex128(s.c64))
	default:
		return formatComplex(s.c128)
	}
}

func formatComplex(v complex128) string {
	re, im := real(v), imag(v)
	if im == 0 {
		return strconv.FormatFloat(re, 'g', -1, 64)
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s%s%si", strconv.FormatFloat(re, 'g', -1, 64), sign, strconv.FormatFloat(im, 'g', -1, 64))
}

// ScalarJSON is the typed JSON representation of a Scalar: enough to
// reconstruct it exactly, including its numeric kind.
type ScalarJSON struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Kind  string `json:"kind"`
}

// ToJSON returns s's typed JSON representation.
func (s *Scalar) ToJSON() ScalarJSON {
	unitSymbol := "1"
	if s.unit != nil {
		unitSymbol = s.unit.symbol
	}
	return ScalarJSON{
		Value: formatScalarValue(s),
		Unit:  unitSymbol,
		Kind:  s.kind.String(),
	}
}

// UntypedJSONValue returns the bare numeric value of s as a float64
// (discarding unit and, for complex kinds, the imaginary part), for
// callers that want an "untyped" JSON number rather than the typed
// {value, unit, kind} object.
func (s *Scalar) UntypedJSONValue() float64 {
	v, ok := s.Float64Value()
	if ok {
		return v
	}
	return real(s.ComplexValue())
}

// DimensionalityCSVRow renders one quantity->Dimension row in the
// catalog dump format written by DimensionalityCSVDump: the quantity name followed by
// a quoted, comma-joined list of "{num,den}" pairs in declared base
// order (L, M, T, I, Θ, N, J).
func DimensionalityCSVRow(quantityName string, d *Dimension) string {
	pairs := make([]string, baseDimensionCount)
	for i := 0; i < baseDimensionCount; i++ {
		pairs[i] = fmt.Sprintf("{%d,%d}", d.NumExponent(i), d.DenExponent(i))
	}
	return fmt.Sprintf("%s,\"%s\"", quantityName, strings.Join(pairs, ","))
}

// DimensionalityCSVDump renders every registered quantity tag as a
// DimensionalityCSVRow, one per line, sorted by name.
func DimensionalityCSVDump() string {
	var b strings.Builder
	for _, name := range QuantityNames() {
		d, err := QuantityDimension(name)
		if err != nil {
			continue
		}
		b.WriteString(DimensionalityCSVRow(name, d))
		b.WriteByte('\n')
	}
	return b.String()
}

// ShowUnit renders a one-line human-readable summary of a Unit: its
// symbol, name, dimensionality, and scale to the coherent SI unit.
func ShowUnit(u *Unit) string {
	name := u.name
	if name == "" {
		name = u.symbol
	}
	return fmt.Sprintf("%s (%s): %s, scale=%g to coherent SI", u.symbol, name, u.dimension.Symbol(), u.scale)
}

// ShowFull renders a multi-line diagnostic dump of the registry: every
// interned unit, one per line via ShowUnit, sorted by symbol.
func ShowFull(r *Registry) string {
	var b strings.Builder
	for _, symbol := range r.AllSymbols() {
		u, err := r.UnitWithSymbol(symbol)
		if err != nil {
			continue
		}
		b.WriteString(ShowUnit(u))
		b.WriteByte('\n')
	}
	return b.String()
}

// SplitByUnits decomposes s across a descending-magnitude sequence of
// units of matching dimensionality, in the style of "1 yr + 2 mo + 3
// wk": each unit takes as many whole multiples of s's remaining
// coherent value as fit, carrying the remainder to the next (smaller)
// unit, and the final unit keeps its fractional remainder.
func SplitByUnits(s *Scalar, units []*Unit) (string, error) {
	if len(units) == 0 {
		return "", newError(KindInvalidArgument, "SplitByUnits requires at least one unit")
	}
	for _, u := range units {
		if !s.unit.dimension.HasSameReducedDimensionality(u.dimension) {
			return "", newError(KindIncompatibleDimensionalities,
				"unit %q is not compatible with %q", u.symbol, s.unit.dimension.Symbol())
		}
	}
	remaining := real(s.coherentValue())
	negative := remaining < 0
	if negative {
		remaining = -remaining
	}

	var parts []string
	for i, u := range units {
		perUnit := remaining / u.scale
		last := i == len(units)-1
		if last {
			parts = append(parts, fmt.Sprintf("%s %s", strconv.FormatFloat(perUnit, 'g', -1, 64), u.symbol))
			continue
		}
		whole := math.Trunc(perUnit)
		remaining -= whole * u.scale
		if whole == 0 && i < len(units)-1 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", strconv.FormatFloat(whole, 'f', 0, 64), u.symbol))
	}
	if len(parts) == 0 {
		parts = append(parts, "0 "+units[len(units)-1].symbol)
	}
	result := strings.Join(parts, " + ")
	if negative {
		result = "-(" + result + ")"
	}
	return result, nil
}
