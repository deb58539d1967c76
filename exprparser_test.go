package sidim

import "testing"

func TestParseScalarBasicArithmetic(t *testing.T) {
	tests := []struct {
		expr       string
		wantValue  float64
		wantSymbol string
	}{
		{"2 + 3", 5, "1"},
		{"2 * 3", 6, "1"},
		{"2^10", 1024, "1"},
		{"9.8 m/s^2", 9.8, "m/s^2"},
		{"5kg", 5, "kg"},
		{"1 m + 50 cm", 1.5, "m"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			s, err := ParseScalar(tt.expr)
			if err != nil {
				t.Fatalf("ParseScalar(%q) returned error: %v", tt.expr, err)
			}
			v, ok := s.Float64Value()
			if !ok {
				t.Fatalf("ParseScalar(%q) did not yield a real value", tt.expr)
			}
			if absFloat(v-tt.wantValue) > 1e-9 {
				t.Errorf("ParseScalar(%q) value = %v, want %v", tt.expr, v, tt.wantValue)
			}
			if s.Unit().Symbol() != tt.wantSymbol {
				t.Errorf("ParseScalar(%q) unit = %q, want %q", tt.expr, s.Unit().Symbol(), tt.wantSymbol)
			}
		})
	}
}

func TestParseScalarFunctionCalls(t *testing.T) {
	s, err := ParseScalar("sqrt(9)")
	if err != nil {
		t.Fatalf("ParseScalar returned error: %v", err)
	}
	v, _ := s.Float64Value()
	if absFloat(v-3) > 1e-9 {
		t.Errorf("sqrt(9) = %v, want 3", v)
	}

	s, err = ParseScalar("2 * sin(0)")
	if err != nil {
		t.Fatalf("ParseScalar returned error: %v", err)
	}
	v, _ = s.Float64Value()
	if absFloat(v) > 1e-9 {
		t.Errorf("2*sin(0) = %v, want 0", v)
	}
}

func TestParseScalarNamedConstants(t *testing.T) {
	s, err := ParseScalar("2*pi")
	if err != nil {
		t.Fatalf("ParseScalar returned error: %v", err)
	}
	v, _ := s.Float64Value()
	if absFloat(v-6.283185307179586) > 1e-9 {
		t.Errorf("2*pi = %v, want 2*pi", v)
	}
}

func TestParseScalarPeriodicTableFallsBackWithoutProvider(t *testing.T) {
	if _, err := ParseScalar(`aw("Fe")`); err == nil {
		t.Fatalf("expected error with no PeriodicTableProvider installed")
	} else if KindOf(err) != KindUnknownConstant {
		t.Fatalf("expected KindUnknownConstant, got %v", KindOf(err))
	}
}

type fakePeriodicTable struct{}

func (fakePeriodicTable) AtomicWeight(symbol string) (*Scalar, error) {
	gPerMol, err := ParseUnit("g/mol")
	if err != nil {
		return nil, err
	}
	if symbol != "Fe" {
		return nil, newError(KindUnknownConstant, "unknown element %q", symbol)
	}
	return NewScalarFloat64(55.845, gPerMol), nil
}

func (fakePeriodicTable) NuclideMass(symbol string) (*Scalar, error) {
	return nil, newError(KindUnknownConstant, "not implemented in fake")
}

func (fakePeriodicTable) NuclearSpin(symbol string) (*Scalar, error) {
	return nil, newError(KindUnknownConstant, "not implemented in fake")
}

func TestParseScalarPeriodicTableWithProvider(t *testing.T) {
	SetPeriodicTableProvider(fakePeriodicTable{})
	defer SetPeriodicTableProvider(nil)

	s, err := ParseScalar(`aw("Fe")`)
	if err != nil {
		t.Fatalf("ParseScalar returned error: %v", err)
	}
	v, _ := s.Float64Value()
	if absFloat(v-55.845) > 1e-9 {
		t.Errorf("aw(Fe) = %v, want 55.845", v)
	}
}

func TestParseScalarIncompatibleAddition(t *testing.T) {
	if _, err := ParseScalar("1 m + 1 kg"); err == nil {
		t.Fatalf("expected error adding incompatible dimensionalities")
	} else if KindOf(err) != KindIncompatibleDimensionalities {
		t.Fatalf("expected KindIncompatibleDimensionalities, got %v", KindOf(err))
	}
}
