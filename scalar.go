package sidim

import "math"

// NumericKind identifies which of the four numeric representations a
// Scalar currently holds.
type NumericKind int

const (
	KindFloat32 NumericKind = iota
	KindFloat64
	KindComplex64
	KindComplex128
)

func (k NumericKind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	default:
		return "unknown"
	}
}

func (k NumericKind) isComplex() bool { return k == KindComplex64 || k == KindComplex128 }

// Scalar is a numeric value carrying a Unit, stored internally as
// whichever of float32/float64/complex64/complex128 the caller chose.
// Arithmetic between two Scalars promotes to the "best" (widest) of the
// two representations rather than silently truncating precision.
type Scalar struct {
	unit *Unit
	kind NumericKind
	f32  float32
	f64  float64
	c64  complex64
	c128 complex128
}

// NewScalarFloat64 builds a real-valued Scalar.
func NewScalarFloat64(value float64, unit *Unit) *Scalar {
	return &Scalar{unit: unit, kind: KindFloat64, f64: value}
}

// NewScalarFloat32 builds a single-precision real-valued Scalar.
func NewScalarFloat32(value float32, unit *Unit) *Scalar {
	return &Scalar{unit: unit, kind: KindFloat32, f32: value}
}

// NewScalarComplex128 builds a double-precision complex Scalar.
func NewScalarComplex128(value complex128, unit *Unit) *Scalar {
	return &Scalar{unit: unit, kind: KindComplex128, c128: value}
}

// NewScalarComplex64 builds a single-precision complex Scalar.
func NewScalarComplex64(value complex64, unit *Unit) *Scalar {
	return &Scalar{unit: unit, kind: KindComplex64, c64: value}
}

// Unit returns s's unit.
func (s *Scalar) Unit() *Unit { return s.unit }

// NumericKind returns which representation s currently holds.
func (s *Scalar) NumericKind() NumericKind { return s.kind }

// Float64Value returns s's value narrowed to float64, discarding any
// imaginary part, and whether s holds a real kind.
func (s *Scalar) Float64Value() (float64, bool) {
	switch s.kind {
	case KindFloat64:
		return s.f64, true
	case KindFloat32:
		return float64(s.f32), true
	default:
		return 0, false
	}
}

// ComplexValue returns s's value widened to complex128 regardless of
// its stored kind.
func (s *Scalar) ComplexValue() complex128 {
	switch s.kind {
	case KindFloat32:
		return complex(float64(s.f32), 0)
	case KindFloat64:
		return complex(s.f64, 0)
	case KindComplex64:
		return complex128(s.c64)
	case KindComplex128:
		return s.c128
	default:
		return 0
	}
}

// SetNumericType returns a copy of s converted to the given
// NumericKind. Narrowing from complex to real drops the imaginary
// part; narrowing from float64 to float32 rounds.
func (s *Scalar) SetNumericType(kind NumericKind) *Scalar {
	if s.kind == kind {
		return s
	}
	switch kind {
	case KindFloat32:
		v, _ := s.Float64Value()
		if s.kind.isComplex() {
			v = real(s.ComplexValue())
		}
		return NewScalarFloat32(float32(v), s.unit)
	case KindFloat64:
		v := real(s.ComplexValue())
		if !s.kind.isComplex() {
			v, _ = s.Float64Value()
		}
		return NewScalarFloat64(v, s.unit)
	case KindComplex64:
		return NewScalarComplex64(complex64(s.ComplexValue()), s.unit)
	case KindComplex128:
		return NewScalarComplex128(s.ComplexValue(), s.unit)
	default:
		return s
	}
}

// bestKind implements the numeric type-promotion rule for binary
// arithmetic: complex beats real, and the result keeps the wider of the
// two precisions, so a float64 or complex128 operand makes a complex
// result complex128. best(float64, float64) is pinned to float64.
func bestKind(a, b NumericKind) NumericKind {
	if a.isComplex() || b.isComplex() {
		if a == KindComplex128 || b == KindComplex128 || a == KindFloat64 || b == KindFloat64 {
			return KindComplex128
		}
		return KindComplex64
	}
	if a == KindFloat64 || b == KindFloat64 {
		return KindFloat64
	}
	return KindFloat32
}

// coherentValue returns s's numeric value expressed in the coherent SI
// unit of s's dimensionality, i.e. value * unit.Scale().
func (s *Scalar) coherentValue() complex128 {
	return s.ComplexValue() * complex(s.unit.scale, 0)
}

func newScalarFromCoherent(kind NumericKind, coherentValue complex128, unit *Unit) *Scalar {
	local := coherentValue / complex(unit.scale, 0)
	switch kind {
	case KindFloat32:
		return NewScalarFloat32(float32(real(local)), unit)
	case KindFloat64:
		return NewScalarFloat64(real(local), unit)
	case KindComplex64:
		return NewScalarComplex64(complex64(local), unit)
	default:
		return NewScalarComplex128(local, unit)
	}
}

// ConvertToUnit returns a Scalar numerically equal to s but expressed
// in target, failing with KindIncompatibleDimensionalities if the two
// units do not share reduced dimensionality.
func (s *Scalar) ConvertToUnit(target *Unit) (*Scalar, error) {
	if !s.unit.dimension.HasSameReducedDimensionality(target.dimension) {
		return nil, newError(KindIncompatibleDimensionalities,
			"cannot convert %q to %q: incompatible dimensionalities %q and %q",
			s.unit.symbol, target.symbol, s.unit.dimension.Symbol(), target.dimension.Symbol())
	}
	return newScalarFromCoherent(s.kind, s.coherentValue(), target), nil
}

// ConvertToCoherentUnit returns a Scalar expressed in the coherent SI
// unit of s's dimensionality.
func (s *Scalar) ConvertToCoherentUnit() (*Scalar, error) {
	coherent, err := defaultRegistry.CoherentUnitForDimensionality(s.unit.dimension)
	if err != nil {
		return nil, err
	}
	return s.ConvertToUnit(coherent)
}

// ReduceUnit returns a Scalar with the same numeric value and symbol as
// s but whose Dimension has been collapsed to reduced form, so m/m
// becomes visibly dimensionless without changing the displayed unit.
// The Unit attached to the result is a fresh copy that is not
// registered in the registry, so it is not pointer-equal to any
// interned Unit.
func (s *Scalar) ReduceUnit() *Scalar {
	reducedUnit := &Unit{
		dimension:  s.unit.dimension.Reduce(),
		scale:      s.unit.scale,
		symbol:     s.unit.symbol,
		name:       s.unit.name,
		pluralName: s.unit.pluralName,
	}
	return &Scalar{unit: reducedUnit, kind: s.kind, f32: s.f32, f64: s.f64, c64: s.c64, c128: s.c128}
}

func requireCompatible(a, b *Scalar) error {
	if !a.unit.dimension.HasSameReducedDimensionality(b.unit.dimension) {
		return newError(KindIncompatibleDimensionalities,
			"incompatible dimensionalities %q and %q", a.unit.dimension.Symbol(), b.unit.dimension.Symbol())
	}
	return nil
}

// AddScalars adds a and b, converting b into a's unit first. The
// result carries a's unit and the best of the two numeric kinds.
func AddScalars(a, b *Scalar) (*Scalar, error) {
	if err := requireCompatible(a, b); err != nil {
		return nil, err
	}
	kind := bestKind(a.kind, b.kind)
	sum := a.coherentValue() + b.coherentValue()
	return newScalarFromCoherent(kind, sum, a.unit), nil
}

// SubtractScalars subtracts b from a, converting b into a's unit first.
func SubtractScalars(a, b *Scalar) (*Scalar, error) {
	if err := requireCompatible(a, b); err != nil {
		return nil, err
	}
	kind := bestKind(a.kind, b.kind)
	diff := a.coherentValue() - b.coherentValue()
	return newScalarFromCoherent(kind, diff, a.unit), nil
}

// MultiplyScalars multiplies a and b, combining their units with the
// reducing unit algebra.
func MultiplyScalars(a, b *Scalar) (*Scalar, error) {
	unit, err := MultiplyUnits(a.unit, b.unit)
	if err != nil {
		return nil, err
	}
	kind := bestKind(a.kind, b.kind)
	product := a.ComplexValue() * b.ComplexValue()
	return newScalarValue(kind, product, unit), nil
}

// DivideScalars divides a by b, combining their units with the
// reducing unit algebra.
func DivideScalars(a, b *Scalar) (*Scalar, error) {
	bv := b.ComplexValue()
	if bv == 0 {
		return nil, newError(KindDomain, "division by zero scalar")
	}
	unit, err := DivideUnits(a.unit, b.unit)
	if err != nil {
		return nil, err
	}
	kind := bestKind(a.kind, b.kind)
	quotient := a.ComplexValue() / bv
	return newScalarValue(kind, quotient, unit), nil
}

// PowerScalar raises a to an integer power.
func PowerScalar(a *Scalar, n int) (*Scalar, error) {
	unit, err := PowerUnit(a.unit, n)
	if err != nil {
		return nil, err
	}
	value := complexPow(a.ComplexValue(), n)
	return newScalarValue(a.kind, value, unit), nil
}

// NthRootScalar computes the nth root of a.
func NthRootScalar(a *Scalar, n int) (*Scalar, error) {
	unit, err := NthRootUnit(a.unit, n)
	if err != nil {
		return nil, err
	}
	if !a.kind.isComplex() {
		v, _ := a.Float64Value()
		root, err := nthRoot(v, n)
		if err != nil {
			return nil, err
		}
		return newScalarValue(a.kind, complex(root, 0), unit), nil
	}
	mag, phase := complexPolar(a.ComplexValue())
	rootMag, err := nthRoot(mag, n)
	if err != nil {
		return nil, err
	}
	rootPhase := phase / float64(n)
	value := complex(rootMag*math.Cos(rootPhase), rootMag*math.Sin(rootPhase))
	return newScalarValue(a.kind, value, unit), nil
}

// AbsoluteValue returns |a| as a real-valued Scalar in a's unit.
func AbsoluteValue(a *Scalar) *Scalar {
	mag := complexAbs(a.ComplexValue())
	kind := KindFloat64
	if a.kind == KindFloat32 {
		kind = KindFloat32
	}
	return newScalarValue(kind, complex(mag, 0), a.unit)
}

// Conjugate returns the complex conjugate of a, unchanged for real kinds.
func Conjugate(a *Scalar) *Scalar {
	if !a.kind.isComplex() {
		return a
	}
	v := a.ComplexValue()
	return newScalarValue(a.kind, complex(real(v), -imag(v)), a.unit)
}

// RealPart returns the real component of a as a real-valued Scalar.
func RealPart(a *Scalar) *Scalar {
	kind := KindFloat64
	if a.kind == KindFloat32 || a.kind == KindComplex64 {
		kind = KindFloat32
	}
	return newScalarValue(kind, complex(real(a.ComplexValue()), 0), a.unit)
}

// ImaginaryPart returns the imaginary component of a as a real-valued
// Scalar.
func ImaginaryPart(a *Scalar) *Scalar {
	kind := KindFloat64
	if a.kind == KindFloat32 || a.kind == KindComplex64 {
		kind = KindFloat32
	}
	return newScalarValue(kind, complex(imag(a.ComplexValue()), 0), a.unit)
}

// GammaScalar computes the gamma function of a, which must be
// dimensionless. Complex arguments are not supported.
func GammaScalar(a *Scalar) (*Scalar, error) {
	if !a.unit.dimension.IsDimensionless() {
		return nil, newError(KindDomain, "gamma requires a dimensionless argument, got %q", a.unit.dimension.Symbol())
	}
	if a.kind.isComplex() {
		return nil, newError(KindDomain, "gamma of a complex scalar is not supported")
	}
	v, _ := a.Float64Value()
	return newScalarValue(a.kind, complex(math.Gamma(v), 0), a.unit), nil
}

// CompareMode selects how Compare treats unit mismatches.
type CompareMode int

const (
	// CompareStrict requires identical interned units.
	CompareStrict CompareMode = iota
	// CompareLoose permits any unit sharing reduced dimensionality,
	// converting b into a's unit before comparing.
	CompareLoose
	// CompareReduced compares each scalar's coherent SI value
	// directly, without requiring either scalar's unit to convert into
	// the other's.
	CompareReduced
)

// Compare compares a and b under the given mode, returning -1, 0, or 1
// as in strings.Compare. Complex scalars compare by magnitude.
func Compare(a, b *Scalar, mode CompareMode) (int, error) {
	var av, bv float64
	switch mode {
	case CompareStrict:
		if a.unit != b.unit {
			return 0, newError(KindIncompatibleDimensionalities, "strict compare requires identical units, got %q and %q", a.unit.symbol, b.unit.symbol)
		}
		av, bv = scalarMagnitude(a), scalarMagnitude(b)
	case CompareLoose:
		converted, err := b.ConvertToUnit(a.unit)
		if err != nil {
			return 0, err
		}
		av, bv = scalarMagnitude(a), scalarMagnitude(converted)
	default:
		if err := requireCompatible(a, b); err != nil {
			return 0, err
		}
		ac, bc := a.coherentValue(), b.coherentValue()
		av, bv = real(ac), real(bc)
		if a.kind.isComplex() {
			av = complexAbs(ac)
		}
		if b.kind.isComplex() {
			bv = complexAbs(bc)
		}
	}
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

func scalarMagnitude(s *Scalar) float64 {
	if s.kind.isComplex() {
		return complexAbs(s.ComplexValue())
	}
	v, _ := s.Float64Value()
	return v
}

func newScalarValue(kind NumericKind, value complex128, unit *Unit) *Scalar {
	switch kind {
	case KindFloat32:
		return NewScalarFloat32(float32(real(value)), unit)
	case KindFloat64:
		return NewScalarFloat64(real(value), unit)
	case KindComplex64:
		return NewScalarComplex64(complex64(value), unit)
	default:
		return NewScalarComplex128(value, unit)
	}
}

func complexAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

func complexPolar(v complex128) (magnitude, phase float64) {
	return complexAbs(v), math.Atan2(imag(v), real(v))
}

func complexPow(v complex128, n int) complex128 {
	neg := n < 0
	if neg {
		n = -n
	}
	result := complex128(1)
	for i := 0; i < n; i++ {
		result *= v
	}
	if neg {
		result = 1 / result
	}
	return result
}
