package electron

import (
	"math"

	"github.com/leapstack-labs/atomview/pkg/core"
)

// fallbackNeutronRatio approximates neutrons per proton when no atomic
// weight is known. It is a rough estimate, not physical data.
const fallbackNeutronRatio = 1.1

// EstimateNeutrons returns the neutron count of the most common isotope,
// derived from the reference atomic weight. Without a reference record the
// count is approximated as z * 1.1.
func EstimateNeutrons(z core.AtomicNumber, lookup core.ElementLookup) int {
	n, _ := estimateNeutrons(z, lookup)
	return n
}

// estimateNeutrons also reports whether the fallback approximation was used.
func estimateNeutrons(z core.AtomicNumber, lookup core.ElementLookup) (int, bool) {
	if lookup != nil {
		if rec, ok := lookup.Lookup(z); ok {
			return int(math.Round(rec.AtomicWeight - float64(z))), false
		}
	}
	return int(math.Round(float64(z) * fallbackNeutronRatio)), true
}
