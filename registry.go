package sidim

import (
	"sort"
	"sync"

	"github.com/gurre/sidim/internal/obs"
)

// RegistryConfig controls locale-sensitive seeding of the unit catalog.
// The zero value seeds the US customary volume family (gallon, quart,
// pint, fluid ounce); setting VolumeLocale to VolumeLocaleImperial
// seeds the UK imperial family instead. This replaces the teacher's
// package-level StandardContext global with an explicit value so two
// goroutines can run different locales without cross-talk.
type RegistryConfig struct {
	VolumeLocale VolumeLocale
}

// VolumeLocale selects which family of customary volume units the
// registry seeds under shared symbols like "gal" and "qt".
type VolumeLocale int

const (
	VolumeLocaleUS VolumeLocale = iota
	VolumeLocaleImperial
)

type unitEntry struct {
	name string
	unit *Unit
}

// Registry is the process-wide, lazily-seeded catalog of interned
// Units. Every exported package-level lookup function delegates to the
// default Registry; NewRegistry exists for tests and for callers who
// need an isolated catalog with a different RegistryConfig.
type Registry struct {
	mu     sync.RWMutex
	config RegistryConfig
	seeded bool

	bySymbol map[string]*Unit
	byQuantity map[string][]*Unit
	byDimension map[*Dimension][]*Unit
	insertion []unitEntry
}

var defaultRegistry = NewRegistry(RegistryConfig{})

// NewRegistry builds an independent, unseeded Registry. Seeding happens
// lazily on first lookup.
func NewRegistry(config RegistryConfig) *Registry {
	return &Registry{
		config:      config,
		bySymbol:    make(map[string]*Unit),
		byQuantity:  make(map[string][]*Unit),
		byDimension: make(map[*Dimension][]*Unit),
	}
}

func (r *Registry) ensureSeeded() {
	r.mu.RLock()
	seeded := r.seeded
	r.mu.RUnlock()
	if seeded {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seeded {
		return
	}
	for _, def := range seedUnitDefinitions(r.config) {
		if _, err := r.internLocked(def.symbol, def.name, def.pluralName, def.dimension, def.scale); err != nil {
			obs.Warnf("sidim: skipping malformed seed unit %q: %v", def.symbol, err)
		}
	}
	r.seeded = true
	obs.Infof("sidim: registry seeded with %d units", len(r.bySymbol))
}

// internLocked must be called with r.mu held for writing. It computes
// the canonical library key for symbol and either returns the existing
// Unit registered under that key or builds and registers a new one.
func (r *Registry) internLocked(symbol, name, pluralName string, dimension *Dimension, scale float64) (*Unit, error) {
	key, err := LibraryKey(symbol)
	if err != nil {
		return nil, err
	}
	if existing, ok := r.bySymbol[key]; ok {
		return existing, nil
	}
	u := &Unit{
		dimension:  dimension,
		scale:      scale,
		symbol:     key,
		name:       name,
		pluralName: pluralName,
	}
	r.bySymbol[key] = u
	for _, q := range QuantityNamesForDimension(dimension) {
		r.byQuantity[q] = append(r.byQuantity[q], u)
	}
	r.byDimension[dimension] = append(r.byDimension[dimension], u)
	r.insertion = append(r.insertion, unitEntry{name: key, unit: u})
	return u, nil
}

// InternUnit looks up or creates the Unit for the given raw symbol,
// dimension and scale, registering it under its canonical library key.
// This is the entry point the unit algebra (C6) and the unit-expression
// parser (C7) use to turn a synthesized compound symbol into an
// interned Unit.
func (r *Registry) InternUnit(symbol, name, pluralName string, dimension *Dimension, scale float64) (*Unit, error) {
	r.ensureSeeded()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.internLocked(symbol, name, pluralName, dimension, scale)
}

// UnitWithSymbol looks up an interned Unit by its raw or canonical
// symbol, canonicalizing the input first so "kg·m/s^2" and "kg*m/s^2"
// resolve to the same Unit.
func (r *Registry) UnitWithSymbol(symbol string) (*Unit, error) {
	r.ensureSeeded()
	key, err := LibraryKey(symbol)
	if err != nil {
		return nil, wrapError(KindUnknownSymbol, err, "no unit registered under symbol %q", symbol)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.bySymbol[key]
	if !ok {
		return nil, newError(KindUnknownSymbol, "no unit registered under symbol %q", symbol)
	}
	return u, nil
}

// UnitsForQuantity returns every Unit registered against a named
// quantity tag, in insertion order.
func (r *Registry) UnitsForQuantity(quantityName string) []*Unit {
	r.ensureSeeded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	units := r.byQuantity[quantityName]
	out := make([]*Unit, len(units))
	copy(out, units)
	return out
}

// UnitsForDimensionality returns every Unit sharing the given
// Dimension, in insertion order.
func (r *Registry) UnitsForDimensionality(d *Dimension) []*Unit {
	r.ensureSeeded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	units := r.byDimension[d]
	out := make([]*Unit, len(units))
	copy(out, units)
	return out
}

// CoherentUnitForDimensionality returns (creating and interning if
// necessary) the coherent SI unit for d: the unit whose symbol is built
// from the base SI symbols (m, kg, s, A, K, mol, cd) substituted into
// d's canonical term structure, and whose scale to itself is exactly 1.
func (r *Registry) CoherentUnitForDimensionality(d *Dimension) (*Unit, error) {
	r.ensureSeeded()
	symbol := coherentSISymbol(d)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.internLocked(symbol, "", "", d, 1.0)
}

// BestUnitForDimensionality implements the "best existing match" policy
// used by the unit algebra (C6), reducing and non-reducing alike: among units sharing d's
// dimensionality, prefer one whose scale is within 1% relative
// tolerance of targetScale, breaking ties by shortest symbol and then
// by registration order. It returns ok=false when nothing is close
// enough, in which case the caller should synthesize and intern a new
// unit instead.
func (r *Registry) BestUnitForDimensionality(d *Dimension, targetScale float64) (u *Unit, ok bool) {
	candidates := r.UnitsForDimensionality(d)
	best := -1
	for i, c := range candidates {
		if !nearlyEqualRelative(c.scale, targetScale, 0.01) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		if len(c.symbol) < len(candidates[best].symbol) {
			best = i
		}
	}
	if best == -1 {
		return nil, false
	}
	return candidates[best], true
}

// AllSymbols returns every registered symbol, sorted, for diagnostic
// dumps (show_full).
func (r *Registry) AllSymbols() []string {
	r.ensureSeeded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.bySymbol))
	for k := range r.bySymbol {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Package-level convenience wrappers over the default Registry, mirroring
// the teacher's package-level StandardContext-backed functions.

func UnitWithSymbol(symbol string) (*Unit, error) { return defaultRegistry.UnitWithSymbol(symbol) }

func UnitsForQuantity(quantityName string) []*Unit {
	return defaultRegistry.UnitsForQuantity(quantityName)
}

func UnitsForDimensionality(d *Dimension) []*Unit {
	return defaultRegistry.UnitsForDimensionality(d)
}

func CoherentUnitForDimensionality(d *Dimension) (*Unit, error) {
	return defaultRegistry.CoherentUnitForDimensionality(d)
}

// coherentSISymbol builds the canonical base-SI symbol for a Dimension
// by substituting each base's SI symbol for its letter placeholder and
// running the result through LibraryKey so ordering and consolidation
// match every other interned symbol.
func coherentSISymbol(d *Dimension) string {
	baseUnitSymbols := [baseDimensionCount]string{"m", "kg", "s", "A", "K", "mol", "cd"}
	var numParts, denParts []string
	for i := 0; i < baseDimensionCount; i++ {
		if n := d.NumExponent(i); n > 0 {
			numParts = append(numParts, dimensionTerm(baseUnitSymbols[i], n))
		}
	}
	for i := 0; i < baseDimensionCount; i++ {
		if n := d.DenExponent(i); n > 0 {
			denParts = append(denParts, dimensionTerm(baseUnitSymbols[i], n))
		}
	}

	var raw string
	switch {
	case len(numParts) == 0 && len(denParts) == 0:
		raw = "1"
	case len(denParts) == 0:
		raw = joinDot(numParts)
	case len(numParts) == 0:
		raw = "1/" + parenIfMany(denParts)
	default:
		raw = joinDot(numParts) + "/" + parenIfMany(denParts)
	}

	key, err := LibraryKey(raw)
	if err != nil {
		return raw
	}
	return key
}

func joinDot(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "•" + p
	}
	return out
}

func parenIfMany(parts []string) string {
	joined := joinDot(parts)
	if len(parts) > 1 {
		return "(" + joined + ")"
	}
	return joined
}
