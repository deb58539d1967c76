package sidim

import "testing"

func TestLibraryKeyNormalizesOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"star alias", "kg*m/s^2", "kg•m/s^2"},
		{"middot alias", "kg·m/s^2", "kg•m/s^2"},
		{"division slash alias", "kg÷s", "kg/s"},
		{"greek mu folds to micro sign", "μm", "µm"},
		{"bare symbol", "kg", "kg"},
		{"empty string is dimensionless", "", "1"},
		{"explicit one", "1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LibraryKey(tt.input)
			if err != nil {
				t.Fatalf("LibraryKey(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("LibraryKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLibraryKeyDoesNotCancelAcrossNumeratorDenominator(t *testing.T) {
	tests := []struct{ input, want string }{
		{"m/m", "m/m"},
		{"Pa/Pa", "Pa/Pa"},
		{"kg•m/kg", "kg•m/kg"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := LibraryKey(tt.input)
			if err != nil {
				t.Fatalf("LibraryKey(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("LibraryKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLibraryKeyConsolidatesRepeatedSymbols(t *testing.T) {
	got, err := LibraryKey("m•m/s/s")
	if err != nil {
		t.Fatalf("LibraryKey returned error: %v", err)
	}
	if want := "m^2/s^2"; got != want {
		t.Errorf("LibraryKey(m*m/s/s) = %q, want %q", got, want)
	}
}

func TestLibraryKeyOrdersDenominatorByExponentThenSymbol(t *testing.T) {
	got, err := LibraryKey("1/(s^2•A)")
	if err != nil {
		t.Fatalf("LibraryKey returned error: %v", err)
	}
	if want := "1/(A•s^2)"; got != want {
		t.Errorf("LibraryKey = %q, want %q", got, want)
	}
}

func TestLibraryKeyStripsRedundantParens(t *testing.T) {
	got, err := LibraryKey("(m)")
	if err != nil {
		t.Fatalf("LibraryKey returned error: %v", err)
	}
	if got != "m" {
		t.Errorf("LibraryKey((m)) = %q, want %q", got, "m")
	}

	got, err = LibraryKey("m^(1)")
	if err != nil {
		t.Fatalf("LibraryKey returned error: %v", err)
	}
	if got != "m" {
		t.Errorf("LibraryKey(m^(1)) = %q, want %q", got, "m")
	}
}

func TestLibraryKeyGroupedPower(t *testing.T) {
	got, err := LibraryKey("(kg•m)^2")
	if err != nil {
		t.Fatalf("LibraryKey returned error: %v", err)
	}
	if want := "kg^2•m^2"; got != want {
		t.Errorf("LibraryKey((kg*m)^2) = %q, want %q", got, want)
	}
}

func TestLibraryKeyRejectsGarbage(t *testing.T) {
	if _, err := LibraryKey("kg/"); err == nil {
		t.Fatalf("expected error for trailing operator")
	}
	if _, err := LibraryKey("kg)"); err == nil {
		t.Fatalf("expected error for unbalanced parens")
	}
}
