package sidim

import "testing"

func TestMultiplyUnitsResolvesToNamedDerivedUnit(t *testing.T) {
	kg, err := UnitWithSymbol("kg")
	if err != nil {
		t.Fatal(err)
	}
	m, err := UnitWithSymbol("m")
	if err != nil {
		t.Fatal(err)
	}
	s, err := UnitWithSymbol("s")
	if err != nil {
		t.Fatal(err)
	}

	massLength, err := MultiplyUnits(kg, m)
	if err != nil {
		t.Fatalf("MultiplyUnits returned error: %v", err)
	}
	perTimeSquared, err := PowerUnit(s, -2)
	if err != nil {
		t.Fatalf("PowerUnit returned error: %v", err)
	}
	newton, err := MultiplyUnits(massLength, perTimeSquared)
	if err != nil {
		t.Fatalf("MultiplyUnits returned error: %v", err)
	}
	if newton.Symbol() != "N" {
		t.Errorf("kg*m*s^-2 resolved to %q, want the registered newton %q", newton.Symbol(), "N")
	}
}

func TestDivideUnitsIsInverseOfMultiply(t *testing.T) {
	m, _ := UnitWithSymbol("m")
	s, _ := UnitWithSymbol("s")

	speed, err := DivideUnits(m, s)
	if err != nil {
		t.Fatalf("DivideUnits returned error: %v", err)
	}
	if speed.Dimension() != DivideDimensions(DimensionLength, DimensionTime) {
		t.Fatalf("DivideUnits produced wrong dimensionality")
	}

	backToLength, err := MultiplyUnits(speed, s)
	if err != nil {
		t.Fatalf("MultiplyUnits returned error: %v", err)
	}
	if !backToLength.IsEquivalentTo(m) {
		t.Fatalf("(m/s)*s should be equivalent to m, got %q scale %g vs m scale %g", backToLength.Symbol(), backToLength.Scale(), m.Scale())
	}
}

func TestPowerUnitZeroIsDimensionless(t *testing.T) {
	m, _ := UnitWithSymbol("m")
	u, err := PowerUnit(m, 0)
	if err != nil {
		t.Fatalf("PowerUnit returned error: %v", err)
	}
	if !u.Dimension().IsDimensionless() {
		t.Fatalf("m^0 should be dimensionless")
	}
}

func TestNthRootUnitRejectsUnevenDivision(t *testing.T) {
	m, _ := UnitWithSymbol("m")
	if _, err := NthRootUnit(m, 2); err == nil {
		t.Fatalf("expected error taking sqrt of m^1")
	} else if KindOf(err) != KindNonIntegerPower {
		t.Fatalf("expected KindNonIntegerPower, got %v", KindOf(err))
	}
}

func TestNthRootUnitOfSquare(t *testing.T) {
	m, _ := UnitWithSymbol("m")
	area, err := PowerUnit(m, 2)
	if err != nil {
		t.Fatal(err)
	}
	root, err := NthRootUnit(area, 2)
	if err != nil {
		t.Fatalf("NthRootUnit returned error: %v", err)
	}
	if !root.IsEquivalentTo(m) {
		t.Fatalf("sqrt(m^2) should be equivalent to m, got %q", root.Symbol())
	}
}

func TestMultiplyUnitsWithoutReducingKeepsDimensionResidue(t *testing.T) {
	m, _ := UnitWithSymbol("m")
	perM, err := PowerUnitWithoutReducing(m, -1)
	if err != nil {
		t.Fatal(err)
	}
	combined, err := MultiplyUnitsWithoutReducing(m, perM)
	if err != nil {
		t.Fatalf("MultiplyUnitsWithoutReducing returned error: %v", err)
	}
	if combined.Dimension().IsDimensionlessAndNotDerived() {
		t.Fatalf("m*m^-1 without reducing should retain cancellable residue")
	}
	if !combined.Dimension().IsDimensionless() {
		t.Fatalf("m*m^-1 should be dimensionless once reduced")
	}
}
