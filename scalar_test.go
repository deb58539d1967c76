package sidim

import "testing"

func mustUnit(t *testing.T, symbol string) *Unit {
	t.Helper()
	u, err := UnitWithSymbol(symbol)
	if err != nil {
		t.Fatalf("UnitWithSymbol(%q) returned error: %v", symbol, err)
	}
	return u
}

func TestAddScalarsConvertsUnits(t *testing.T) {
	m := mustUnit(t, "m")
	cm := mustUnit(t, "cm")

	a := NewScalarFloat64(1, m)
	b := NewScalarFloat64(50, cm)

	sum, err := AddScalars(a, b)
	if err != nil {
		t.Fatalf("AddScalars returned error: %v", err)
	}
	v, _ := sum.Float64Value()
	if absFloat(v-1.5) > 1e-9 {
		t.Errorf("1 m + 50 cm = %v m, want 1.5 m", v)
	}
	if sum.Unit() != m {
		t.Errorf("sum should carry the left operand's unit")
	}
}

func TestAddScalarsIncompatibleDimensionality(t *testing.T) {
	m := mustUnit(t, "m")
	kg := mustUnit(t, "kg")
	if _, err := AddScalars(NewScalarFloat64(1, m), NewScalarFloat64(1, kg)); err == nil {
		t.Fatalf("expected error adding length to mass")
	} else if KindOf(err) != KindIncompatibleDimensionalities {
		t.Fatalf("expected KindIncompatibleDimensionalities, got %v", KindOf(err))
	}
}

func TestMultiplyScalarsPromotesNumericKind(t *testing.T) {
	m := mustUnit(t, "m")
	a := NewScalarFloat32(2, m)
	b := NewScalarFloat64(3, m)
	product, err := MultiplyScalars(a, b)
	if err != nil {
		t.Fatalf("MultiplyScalars returned error: %v", err)
	}
	if product.NumericKind() != KindFloat64 {
		t.Errorf("best(float32, float64) = %v, want float64", product.NumericKind())
	}
	v, _ := product.Float64Value()
	if absFloat(v-6) > 1e-9 {
		t.Errorf("2m * 3m = %v, want 6", v)
	}
}

func TestDivideScalarsByZero(t *testing.T) {
	m := mustUnit(t, "m")
	if _, err := DivideScalars(NewScalarFloat64(1, m), NewScalarFloat64(0, m)); err == nil {
		t.Fatalf("expected error dividing by zero")
	} else if KindOf(err) != KindDomain {
		t.Fatalf("expected KindDomain, got %v", KindOf(err))
	}
}

func TestConvertToUnit(t *testing.T) {
	kg := mustUnit(t, "kg")
	lb := mustUnit(t, "lb")
	s := NewScalarFloat64(1, kg)
	converted, err := s.ConvertToUnit(lb)
	if err != nil {
		t.Fatalf("ConvertToUnit returned error: %v", err)
	}
	v, _ := converted.Float64Value()
	if v < 2.2 || v > 2.3 {
		t.Errorf("1 kg in lb = %v, want approximately 2.2046", v)
	}
}

func TestReduceUnitKeepsNumericValue(t *testing.T) {
	m := mustUnit(t, "m")
	perM, err := PowerUnitWithoutReducing(m, -1)
	if err != nil {
		t.Fatal(err)
	}
	unreduced, err := MultiplyUnitsWithoutReducing(m, perM)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScalarFloat64(3, unreduced)
	reduced := s.ReduceUnit()
	if !reduced.Unit().Dimension().IsDimensionlessAndNotDerived() {
		t.Errorf("reduced scalar's unit should be fully dimensionless")
	}
	v, _ := reduced.Float64Value()
	if v != 3 {
		t.Errorf("ReduceUnit changed the numeric value: got %v, want 3", v)
	}
}

func TestNthRootScalarOfPerfectSquare(t *testing.T) {
	m2, err := ParseUnit("m^2")
	if err != nil {
		t.Fatal(err)
	}
	area := NewScalarFloat64(9, m2)
	root, err := NthRootScalar(area, 2)
	if err != nil {
		t.Fatalf("NthRootScalar returned error: %v", err)
	}
	v, _ := root.Float64Value()
	if absFloat(v-3) > 1e-9 {
		t.Errorf("sqrt(9 m^2) = %v, want 3", v)
	}
}

func TestGammaScalarRequiresDimensionless(t *testing.T) {
	m := mustUnit(t, "m")
	if _, err := GammaScalar(NewScalarFloat64(5, m)); err == nil {
		t.Fatalf("expected error computing gamma of a non-dimensionless scalar")
	} else if KindOf(err) != KindDomain {
		t.Fatalf("expected KindDomain, got %v", KindOf(err))
	}
}

func TestCompareModes(t *testing.T) {
	m := mustUnit(t, "m")
	cm := mustUnit(t, "cm")
	a := NewScalarFloat64(1, m)
	b := NewScalarFloat64(100, cm)

	if _, err := Compare(a, b, CompareStrict); err == nil {
		t.Fatalf("expected strict compare to fail for differing units")
	}

	cmp, err := Compare(a, b, CompareLoose)
	if err != nil {
		t.Fatalf("CompareLoose returned error: %v", err)
	}
	if cmp != 0 {
		t.Errorf("1 m vs 100 cm loose compare = %d, want 0", cmp)
	}

	cmp, err = Compare(a, b, CompareReduced)
	if err != nil {
		t.Fatalf("CompareReduced returned error: %v", err)
	}
	if cmp != 0 {
		t.Errorf("1 m vs 100 cm reduced compare = %d, want 0", cmp)
	}
}
