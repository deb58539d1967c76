package sidim

import "github.com/gurre/sidim/internal/obs"

// LeakReporter receives diagnostic counts at Shutdown time. The core
// package interns Dimensions and Units for the life of the process and
// never frees them, so "leak" here means "still resident," not a bug;
// a host embedding sidim inside a longer-lived service can use this to
// track catalog growth across repeated ParseUnit/ParseScalar calls with
// novel synthesized symbols.
type LeakReporter interface {
	ReportInternedCounts(dimensions, units, quantities int)
}

// Shutdown reports the current size of every interning table to leak,
// if non-nil, and logs the same counts at info level. It leaves the
// logging configuration unchanged and does not clear the interning
// tables themselves: Dimension and Unit pointers
// handed out to callers remain valid for the life of the process.
func Shutdown(leak LeakReporter) {
	dimensions.mu.RLock()
	dimensionCount := len(dimensions.byKey)
	dimensions.mu.RUnlock()

	defaultRegistry.mu.RLock()
	unitCount := len(defaultRegistry.bySymbol)
	defaultRegistry.mu.RUnlock()

	quantities.mu.RLock()
	quantityCount := len(quantities.byName)
	quantities.mu.RUnlock()

	if leak != nil {
		leak.ReportInternedCounts(dimensionCount, unitCount, quantityCount)
	}
	obs.Infof("sidim: shutdown, %d dimensions, %d units, %d quantities interned", dimensionCount, unitCount, quantityCount)
}
