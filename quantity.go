package sidim

import (
	"sort"
	"sync"
)

// quantityEntry pairs a quantity tag name with the Dimension it denotes.
// Several quantity tags may point at the same Dimension (pressure,
// stress, and elastic modulus are all M/(L·T^2)).
type quantityEntry struct {
	name string
	dim  *Dimension
}

type quantityRegistry struct {
	mu        sync.RWMutex
	seeded    bool
	byName    map[string]*Dimension
	namesByD  map[*Dimension][]string
	insertion []quantityEntry
}

var quantities = &quantityRegistry{
	byName:   make(map[string]*Dimension),
	namesByD: make(map[*Dimension][]string),
}

func (r *quantityRegistry) ensureSeeded() {
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
	for _, e := range seedQuantities() {
		r.register(e.name, e.dim)
	}
	r.seeded = true
}

// register must be called with r.mu held.
func (r *quantityRegistry) register(name string, dim *Dimension) {
	if _, exists := r.byName[name]; exists {
		return
	}
	r.byName[name] = dim
	r.namesByD[dim] = append(r.namesByD[dim], name)
	r.insertion = append(r.insertion, quantityEntry{name: name, dim: dim})
}

// RegisterQuantity adds a named quantity tag to the registry, or is a
// no-op if the name is already registered. Used by callers extending
// the catalog beyond the tags seeded by seedQuantities.
func RegisterQuantity(name string, dim *Dimension) {
	quantities.ensureSeeded()
	quantities.mu.Lock()
	defer quantities.mu.Unlock()
	quantities.register(name, dim)
}

// QuantityDimension looks up the Dimension for a named quantity tag
// such as "pressure" or "gyromagnetic ratio".
func QuantityDimension(name string) (*Dimension, error) {
	quantities.ensureSeeded()
	quantities.mu.RLock()
	defer quantities.mu.RUnlock()
	d, ok := quantities.byName[name]
	if !ok {
		return nil, newError(KindInvalidArgument, "unknown quantity %q", name)
	}
	return d, nil
}

// QuantityNamesForDimension returns every quantity tag that shares the
// given Dimension, in insertion order.
func QuantityNamesForDimension(d *Dimension) []string {
	quantities.ensureSeeded()
	quantities.mu.RLock()
	defer quantities.mu.RUnlock()
	names := quantities.namesByD[d]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// QuantityNames returns every registered quantity tag, sorted for
// stable diagnostic output (e.g. DimensionalityCSVDump).
func QuantityNames() []string {
	quantities.ensureSeeded()
	quantities.mu.RLock()
	defer quantities.mu.RUnlock()
	names := make([]string, 0, len(quantities.byName))
	for name := range quantities.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dim is a small helper building a *Dimension from reduced (signed)
// exponents in base order [L, M, T, I, Θ, N, J], used only while
// seeding the quantity catalog below.
func dim(length, mass, time, current, temperature, amount, luminous int) *Dimension {
	var num, den [baseDimensionCount]int
	set := func(idx, exp int) {
		if exp > 0 {
			num[idx] = exp
		} else if exp < 0 {
			den[idx] = -exp
		}
	}
	set(baseLength, length)
	set(baseMass, mass)
	set(baseTime, time)
	set(baseCurrent, current)
	set(baseTemperature, temperature)
	set(baseAmount, amount)
	set(baseLuminous, luminous)
	return NewDimension(num, den)
}

// seedQuantities lists the quantity name -> Dimension catalog consulted
// by QuantityDimension. It is not exhaustive of the ~140 tags named in
// spec.md §4.1, but covers every family the spec calls out by name plus
// the ones original_source/src/SIDimensionalityLib.c lists for common
// mechanical, electromagnetic, and thermodynamic quantities, and is
// meant to be extended with RegisterQuantity at init time by callers
// with more specialized needs.
func seedQuantities() []quantityEntry {
	return []quantityEntry{
		{"length", dim(1, 0, 0, 0, 0, 0, 0)},
		{"mass", dim(0, 1, 0, 0, 0, 0, 0)},
		{"time", dim(0, 0, 1, 0, 0, 0, 0)},
		{"electric current", dim(0, 0, 0, 1, 0, 0, 0)},
		{"thermodynamic temperature", dim(0, 0, 0, 0, 1, 0, 0)},
		{"amount of substance", dim(0, 0, 0, 0, 0, 1, 0)},
		{"luminous intensity", dim(0, 0, 0, 0, 0, 0, 1)},

		{"area", dim(2, 0, 0, 0, 0, 0, 0)},
		{"volume", dim(3, 0, 0, 0, 0, 0, 0)},
		{"speed", dim(1, 0, -1, 0, 0, 0, 0)},
		{"velocity", dim(1, 0, -1, 0, 0, 0, 0)},
		{"acceleration", dim(1, 0, -2, 0, 0, 0, 0)},
		{"jerk", dim(1, 0, -3, 0, 0, 0, 0)},
		{"frequency", dim(0, 0, -1, 0, 0, 0, 0)},
		{"wavenumber", dim(-1, 0, 0, 0, 0, 0, 0)},
		{"density", dim(-3, 1, 0, 0, 0, 0, 0)},
		{"specific volume", dim(3, -1, 0, 0, 0, 0, 0)},
		{"momentum", dim(1, 1, -1, 0, 0, 0, 0)},
		{"angular momentum", dim(2, 1, -1, 0, 0, 0, 0)},
		{"moment of inertia", dim(2, 1, 0, 0, 0, 0, 0)},
		{"force", dim(1, 1, -2, 0, 0, 0, 0)},
		{"weight", dim(1, 1, -2, 0, 0, 0, 0)},
		{"torque", dim(2, 1, -2, 0, 0, 0, 0)},
		{"pressure", dim(-1, 1, -2, 0, 0, 0, 0)},
		{"stress", dim(-1, 1, -2, 0, 0, 0, 0)},
		{"elastic modulus", dim(-1, 1, -2, 0, 0, 0, 0)},
		{"surface tension", dim(0, 1, -2, 0, 0, 0, 0)},
		{"viscosity, dynamic", dim(-1, 1, -1, 0, 0, 0, 0)},
		{"viscosity, kinematic", dim(2, 0, -1, 0, 0, 0, 0)},
		{"energy", dim(2, 1, -2, 0, 0, 0, 0)},
		{"work", dim(2, 1, -2, 0, 0, 0, 0)},
		{"heat", dim(2, 1, -2, 0, 0, 0, 0)},
		{"power", dim(2, 1, -3, 0, 0, 0, 0)},
		{"radiant flux", dim(2, 1, -3, 0, 0, 0, 0)},
		{"action", dim(2, 1, -1, 0, 0, 0, 0)},

		{"electric charge", dim(0, 0, 1, 1, 0, 0, 0)},
		{"electric potential difference", dim(2, 1, -3, -1, 0, 0, 0)},
		{"voltage", dim(2, 1, -3, -1, 0, 0, 0)},
		{"electromotive force", dim(2, 1, -3, -1, 0, 0, 0)},
		{"capacitance", dim(-2, -1, 4, 2, 0, 0, 0)},
		{"resistance", dim(2, 1, -3, -2, 0, 0, 0)},
		{"impedance", dim(2, 1, -3, -2, 0, 0, 0)},
		{"reactance", dim(2, 1, -3, -2, 0, 0, 0)},
		{"electrical conductance", dim(-2, -1, 3, 2, 0, 0, 0)},
		{"magnetic flux", dim(2, 1, -2, -1, 0, 0, 0)},
		{"magnetic flux density", dim(0, 1, -2, -1, 0, 0, 0)},
		{"inductance", dim(2, 1, -2, -2, 0, 0, 0)},
		{"electric field strength", dim(1, 1, -3, -1, 0, 0, 0)},
		{"electric displacement", dim(-2, 0, 1, 1, 0, 0, 0)},
		{"permittivity", dim(-3, -1, 4, 2, 0, 0, 0)},
		{"permeability", dim(1, 1, -2, -2, 0, 0, 0)},
		{"resistivity", dim(3, 1, -3, -2, 0, 0, 0)},
		{"conductivity, electrical", dim(-3, -1, 3, 2, 0, 0, 0)},
		{"current density", dim(-2, 0, 0, 1, 0, 0, 0)},
		{"magnetic field strength", dim(-1, 0, 0, 1, 0, 0, 0)},
		{"magnetic dipole moment", dim(2, 0, 0, 1, 0, 0, 0)},
		{"gyromagnetic ratio", dim(0, -1, 1, 1, 0, 0, 0)},

		{"luminous flux", dim(0, 0, 0, 0, 0, 0, 1)},
		{"illuminance", dim(-2, 0, 0, 0, 0, 0, 1)},
		{"luminous efficacy", dim(-2, -1, 3, 0, 0, 0, 1)},

		{"radioactivity", dim(0, 0, -1, 0, 0, 0, 0)},
		{"absorbed dose", dim(2, 0, -2, 0, 0, 0, 0)},
		{"equivalent dose", dim(2, 0, -2, 0, 0, 0, 0)},
		{"catalytic activity", dim(0, 0, -1, 0, 0, 1, 0)},
		{"molar mass", dim(0, 1, 0, 0, 0, -1, 0)},
		{"molar volume", dim(3, 0, 0, 0, 0, -1, 0)},
		{"molar concentration", dim(-3, 0, 0, 0, 0, 1, 0)},
		{"molar energy", dim(2, 1, -2, 0, 0, -1, 0)},
		{"molar heat capacity", dim(2, 1, -2, 0, -1, -1, 0)},
		{"specific heat capacity", dim(2, 0, -2, 0, -1, 0, 0)},
		{"specific energy", dim(2, 0, -2, 0, 0, 0, 0)},
		{"thermal conductivity", dim(1, 1, -3, 0, -1, 0, 0)},
		{"thermal resistance", dim(-2, -1, 3, 0, 1, 0, 0)},
		{"heat capacity", dim(2, 1, -2, 0, -1, 0, 0)},
		{"entropy", dim(2, 1, -2, 0, -1, 0, 0)},
		{"temperature gradient", dim(-1, 0, 0, 0, 1, 0, 0)},

		{"Planck constant", dim(2, 1, -1, 0, 0, 0, 0)},
		{"Boltzmann constant", dim(2, 1, -2, 0, -1, 0, 0)},
		{"gas constant", dim(2, 1, -2, 0, -1, -1, 0)},
		{"Avogadro constant", dim(0, 0, 0, 0, 0, -1, 0)},
		{"Stefan-Boltzmann constant", dim(0, 1, -3, 0, -4, 0, 0)},
		{"gravitational constant", dim(3, -1, -2, 0, 0, 0, 0)},
		{"electric constant", dim(-3, -1, 4, 2, 0, 0, 0)},
		{"magnetic constant", dim(1, 1, -2, -2, 0, 0, 0)},
		{"Rydberg constant", dim(-1, 0, 0, 0, 0, 0, 0)},
		{"Faraday constant", dim(0, 0, 1, 1, 0, -1, 0)},

		{"plane angle", dim(0, 0, 0, 0, 0, 0, 0)},
		{"solid angle", dim(0, 0, 0, 0, 0, 0, 0)},
		{"dimensionless", dim(0, 0, 0, 0, 0, 0, 0)},
	}
}
