package sidim

import (
	"math/big"
	"sort"
)

// sitPrefix pairs an SI or binary prefix symbol with its multiplier.
// Factors are stored as big.Float; every current caller reads them
// through prefixFactorFloat64, so each prefix is applied to a unit's
// scale as a float64.
type sitPrefix struct {
	symbol string
	factor *big.Float
}

// prefixTable lists the twenty decimal SI prefixes plus the six IEC
// binary prefixes, mirroring the teacher's si.go Prefixes map. Decimal
// factors are converted from float64 literals (so negative powers of
// ten carry float64 rounding); binary factors are built exactly by
// repeated doubling.
var prefixTable = buildPrefixTable()

func buildPrefixTable() []sitPrefix {
	bf := func(v float64) *big.Float { return big.NewFloat(v) }
	pow2 := func(n int) *big.Float {
		f := big.NewFloat(1)
		two := big.NewFloat(2)
		for i := 0; i < n; i++ {
			f.Mul(f, two)
		}
		return f
	}
	return []sitPrefix{
		{"Y", bf(1e24)}, {"Z", bf(1e21)}, {"E", bf(1e18)}, {"P", bf(1e15)},
		{"T", bf(1e12)}, {"G", bf(1e9)}, {"M", bf(1e6)}, {"k", bf(1e3)},
		{"h", bf(1e2)}, {"da", bf(1e1)},
		{"d", bf(1e-1)}, {"c", bf(1e-2)}, {"m", bf(1e-3)}, {"µ", bf(1e-6)},
		{"n", bf(1e-9)}, {"p", bf(1e-12)}, {"f", bf(1e-15)}, {"a", bf(1e-18)},
		{"z", bf(1e-21)}, {"y", bf(1e-24)},
		{"Ki", pow2(10)}, {"Mi", pow2(20)}, {"Gi", pow2(30)},
		{"Ti", pow2(40)}, {"Pi", pow2(50)}, {"Ei", pow2(60)},
	}
}

// sortedPrefixSymbols returns every non-empty prefix symbol, longest
// first, so that greedy prefix matching during parsing tries "da"
// before "d" and "Ki" before nothing.
var sortedPrefixSymbols = func() []string {
	symbols := make([]string, 0, len(prefixTable))
	for _, p := range prefixTable {
		symbols = append(symbols, p.symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return len(symbols[i]) > len(symbols[j])
	})
	return symbols
}()

// prefixFactor returns the multiplier for a prefix symbol and whether
// it was found.
func prefixFactor(symbol string) (*big.Float, bool) {
	for _, p := range prefixTable {
		if p.symbol == symbol {
			return p.factor, true
		}
	}
	return nil, false
}

// prefixFactorFloat64 is a convenience wrapper returning the float64
// value of a prefix factor.
func prefixFactorFloat64(symbol string) (float64, bool) {
	f, ok := prefixFactor(symbol)
	if !ok {
		return 0, false
	}
	v, _ := f.Float64()
	return v, true
}
