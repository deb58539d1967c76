package sidim

import (
	"embed"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gurre/sidim/internal/obs"
)

//go:embed units.csv
var unitsCSV embed.FS

// unitDef is one fully-resolved row ready to be interned: either a row
// read directly from units.csv, or a prefixed variant derived from one.
type unitDef struct {
	symbol     string
	name       string
	pluralName string
	dimension  *Dimension
	scale      float64
}

// csvUnitRow mirrors a units.csv record before prefix expansion.
type csvUnitRow struct {
	symbol     string
	name       string
	pluralName string
	prefixable bool
	locale     string
	dim        *Dimension
	scale      float64
}

// seedUnitDefinitions reads units.csv (grounded on maxnilz-calcu's
// unit.go embed.FS + encoding/csv seeding pattern) and expands it into
// the full set of base and SI-prefixed unit definitions for the given
// locale. Scale values are parsed with shopspring/decimal so the
// catalog's constants keep their full input precision before the final
// narrowing to float64 on the interned Unit.
func seedUnitDefinitions(config RegistryConfig) []unitDef {
	rows, err := readUnitsCSV()
	if err != nil {
		obs.Warnf("sidim: failed to read embedded units.csv: %v", err)
		return nil
	}

	var defs []unitDef
	for _, row := range rows {
		if !localeMatches(row.locale, config.VolumeLocale) {
			continue
		}
		defs = append(defs, unitDef{
			symbol:     row.symbol,
			name:       row.name,
			pluralName: row.pluralName,
			dimension:  row.dim,
			scale:      row.scale,
		})
	}

	decimalPrefixes := prefixTable[:20]
	binaryPrefixes := prefixTable[20:]
	for _, row := range rows {
		if !row.prefixable || !localeMatches(row.locale, config.VolumeLocale) {
			continue
		}
		for _, p := range decimalPrefixes {
			factor, _ := prefixFactorFloat64(p.symbol)
			defs = append(defs, unitDef{
				symbol:    p.symbol + row.symbol,
				dimension: row.dim,
				scale:     row.scale * factor,
			})
		}
		if row.symbol == "B" || row.symbol == "bit" {
			for _, p := range binaryPrefixes {
				factor, _ := prefixFactorFloat64(p.symbol)
				defs = append(defs, unitDef{
					symbol:    p.symbol + row.symbol,
					dimension: row.dim,
					scale:     row.scale * factor,
				})
			}
		}
	}
	return defs
}

func localeMatches(rowLocale string, selected VolumeLocale) bool {
	switch rowLocale {
	case "":
		return true
	case "us":
		return selected == VolumeLocaleUS
	case "uk":
		return selected == VolumeLocaleImperial
	default:
		return false
	}
}

func readUnitsCSV() ([]csvUnitRow, error) {
	f, err := unitsCSV.Open("units.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, newError(KindInternal, "units.csv has no data rows")
	}

	rows := make([]csvUnitRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 13 {
			continue
		}
		row, err := parseUnitsCSVRecord(record)
		if err != nil {
			obs.Warnf("sidim: skipping malformed units.csv row %v: %v", record, err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseUnitsCSVRecord(record []string) (csvUnitRow, error) {
	get := func(i int) string { return strings.TrimSpace(record[i]) }

	exps := make([]int, 7)
	for i := 0; i < 7; i++ {
		n, err := strconv.Atoi(get(5 + i))
		if err != nil {
			return csvUnitRow{}, err
		}
		exps[i] = n
	}

	scaleDec, err := decimal.NewFromString(get(12))
	if err != nil {
		return csvUnitRow{}, err
	}
	scale, _ := scaleDec.Float64()

	return csvUnitRow{
		symbol:     get(0),
		name:       get(1),
		pluralName: get(2),
		prefixable: get(3) == "1",
		locale:     get(4),
		dim:        dim(exps[0], exps[1], exps[2], exps[3], exps[4], exps[5], exps[6]),
		scale:      scale,
	}, nil
}
