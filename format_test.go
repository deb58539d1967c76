package sidim

import (
	"strings"
	"testing"
)

func TestScalarString(t *testing.T) {
	m := mustUnit(t, "m")
	s := NewScalarFloat64(9.8, m)
	if got, want := s.String(), "9.8 m"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	dimensionless, _ := CoherentUnitForDimensionality(DimensionDimensionless)
	pi := NewScalarFloat64(3.14, dimensionless)
	if got, want := pi.String(), "3.14"; got != want {
		t.Errorf("String() for dimensionless = %q, want %q", got, want)
	}
}

func TestScalarToJSON(t *testing.T) {
	m := mustUnit(t, "m")
	s := NewScalarFloat64(2, m)
	j := s.ToJSON()
	if j.Unit != "m" || j.Value != "2" || j.Kind != "float64" {
		t.Errorf("ToJSON() = %+v, want {Value:2 Unit:m Kind:float64}", j)
	}
}

func TestDimensionalityCSVRow(t *testing.T) {
	row := DimensionalityCSVRow("force", MultiplyDimensions(DimensionMass, MultiplyDimensions(DimensionLength, PowerDimension(DimensionTime, -2))))
	if !strings.HasPrefix(row, "force,\"{1,0},{1,0},{0,2}") {
		t.Errorf("DimensionalityCSVRow unexpected prefix: %q", row)
	}
}

func TestShowUnit(t *testing.T) {
	n := mustUnit(t, "N")
	got := ShowUnit(n)
	if !strings.Contains(got, "N") || !strings.Contains(got, "newton") {
		t.Errorf("ShowUnit(N) = %q, want it to mention symbol and name", got)
	}
}

func TestSplitByUnits(t *testing.T) {
	s := NewScalarFloat64(3725, mustUnit(t, "s"))
	units := []*Unit{mustUnit(t, "h"), mustUnit(t, "min"), mustUnit(t, "s")}
	got, err := SplitByUnits(s, units)
	if err != nil {
		t.Fatalf("SplitByUnits returned error: %v", err)
	}
	want := "1 h + 2 min + 5 s"
	if got != want {
		t.Errorf("SplitByUnits(3725s) = %q, want %q", got, want)
	}
}

func TestSplitByUnitsRejectsIncompatible(t *testing.T) {
	s := NewScalarFloat64(1, mustUnit(t, "kg"))
	units := []*Unit{mustUnit(t, "s")}
	if _, err := SplitByUnits(s, units); err == nil {
		t.Fatalf("expected error splitting mass by time units")
	}
}
