package sidim

import "testing"

func TestParseUnitSimpleAndPrefixed(t *testing.T) {
	tests := []struct {
		expr       string
		wantSymbol string
	}{
		{"m", "m"},
		{"km", "km"},
		{"kg*m/s^2", "N"},
		{"kg·m/s^2", "N"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			u, err := ParseUnit(tt.expr)
			if err != nil {
				t.Fatalf("ParseUnit(%q) returned error: %v", tt.expr, err)
			}
			if u.Symbol() != tt.wantSymbol {
				t.Errorf("ParseUnit(%q).Symbol() = %q, want %q", tt.expr, u.Symbol(), tt.wantSymbol)
			}
		})
	}
}

func TestParseUnitGrouping(t *testing.T) {
	u, err := ParseUnit("J/(mol*K)")
	if err != nil {
		t.Fatalf("ParseUnit returned error: %v", err)
	}
	wantDim := DivideDimensions(MultiplyDimensions(DimensionMass, MultiplyDimensions(PowerDimension(DimensionLength, 2), PowerDimension(DimensionTime, -2))), MultiplyDimensions(DimensionAmount, DimensionTemperature))
	if u.Dimension() != wantDim {
		t.Errorf("ParseUnit(J/(mol*K)) dimension = %q, want %q", u.Dimension().Symbol(), wantDim.Symbol())
	}
}

func TestParseUnitUnknownSymbol(t *testing.T) {
	if _, err := ParseUnit("xyzzy"); err == nil {
		t.Fatalf("expected error for unknown unit symbol")
	} else if KindOf(err) != KindUnknownSymbol {
		t.Fatalf("expected KindUnknownSymbol, got %v", KindOf(err))
	}
}

func TestParseUnitWithConversion(t *testing.T) {
	source, target, multiplier, err := ParseUnitWithConversion("kg..lb")
	if err != nil {
		t.Fatalf("ParseUnitWithConversion returned error: %v", err)
	}
	if source.Symbol() != "kg" || target.Symbol() != "lb" {
		t.Fatalf("got source=%q target=%q", source.Symbol(), target.Symbol())
	}
	if multiplier <= 2.2 || multiplier >= 2.3 {
		t.Errorf("1 kg in lb = %g, want approximately 2.2046", multiplier)
	}
}

func TestParseUnitWithConversionIncompatible(t *testing.T) {
	if _, _, _, err := ParseUnitWithConversion("kg..m"); err == nil {
		t.Fatalf("expected error converting kg to m")
	} else if KindOf(err) != KindIncompatibleDimensionalities {
		t.Fatalf("expected KindIncompatibleDimensionalities, got %v", KindOf(err))
	}
}
