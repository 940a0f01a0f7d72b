package electron

import "github.com/leapstack-labs/atomview/pkg/core"

// ShellDistribution sums electrons per principal shell, innermost first.
// Shells that end up empty are dropped; relative order is kept.
func ShellDistribution(cfg core.Configuration) core.ShellDistribution {
	var shells []int
	for _, e := range cfg {
		for len(shells) < e.N {
			shells = append(shells, 0)
		}
		shells[e.N-1] += e.Electrons
	}

	out := make(core.ShellDistribution, 0, len(shells))
	for _, n := range shells {
		if n != 0 {
			out = append(out, n)
		}
	}
	return out
}
