package electron

import "github.com/leapstack-labs/atomview/pkg/core"

// exceptions holds observed ground states that deviate from Aufbau filling.
// Corrections for one element apply in order.
var exceptions = core.ExceptionRule{
	24:  shift("4s", "3d", 1), // Chromium
	29:  shift("4s", "3d", 1), // Copper
	41:  shift("5s", "4d", 1), // Niobium
	42:  shift("5s", "4d", 1), // Molybdenum
	44:  shift("5s", "4d", 1), // Ruthenium
	45:  shift("5s", "4d", 1), // Rhodium
	46:  shift("5s", "4d", 2), // Palladium: 5s0 4d10
	47:  shift("5s", "4d", 1), // Silver
	57:  shift("6s", "5d", 1), // Lanthanum
	58:  shift("6s", "4f", 1), // Cerium
	64:  shift("6s", "4f", 1), // Gadolinium
	78:  shift("6s", "5d", 1), // Platinum
	79:  shift("6s", "5d", 1), // Gold
	89:  shift("7s", "6d", 1), // Actinium
	90:  shift("7s", "6d", 1), // Thorium
	91:  shift("7s", "5f", 1), // Protactinium
	92:  shift("7s", "5f", 1), // Uranium
	93:  shift("7s", "5f", 1), // Neptunium
	96:  shift("7s", "5f", 1), // Curium
	103: shift("7s", "6d", 1), // Lawrencium
}

// shift moves n electrons from one subshell to another.
func shift(from, to string, n int) []core.Correction {
	return []core.Correction{
		{Subshell: from, Delta: -n},
		{Subshell: to, Delta: n},
	}
}

// Exceptions returns a deep copy of the exception table.
func Exceptions() core.ExceptionRule {
	out := make(core.ExceptionRule, len(exceptions))
	for z, corrections := range exceptions {
		out[z] = append([]core.Correction(nil), corrections...)
	}
	return out
}

// ExceptionFor returns the corrections registered for z, if any.
func ExceptionFor(z core.AtomicNumber) ([]core.Correction, bool) {
	corrections, ok := exceptions[z]
	if !ok {
		return nil, false
	}
	return append([]core.Correction(nil), corrections...), true
}

// ApplyExceptions returns the observed ground-state configuration for z:
// the registered corrections are applied, then emptied subshells are dropped.
// Elements without an exception get an unchanged copy of cfg.
func ApplyExceptions(cfg core.Configuration, z core.AtomicNumber) core.Configuration {
	corrections, ok := exceptions[z]
	if !ok {
		return cfg.Clone()
	}
	return DropEmpty(ApplyCorrections(cfg, corrections))
}

// ApplyCorrections applies each correction in order to the entry with the
// matching key, clamping the result at zero. If any correction targets a
// subshell absent from cfg the whole set is a no-op, so electrons are only
// ever moved, never lost. Entry count and order are preserved.
func ApplyCorrections(cfg core.Configuration, corrections []core.Correction) core.Configuration {
	out := cfg.Clone()
	if !Applicable(cfg, corrections) {
		return out
	}
	for _, c := range corrections {
		i := out.Find(c.Subshell)
		out[i].Electrons = max(0, out[i].Electrons+c.Delta)
	}
	return out
}

// Applicable reports whether every correction targets a subshell present in cfg.
func Applicable(cfg core.Configuration, corrections []core.Correction) bool {
	for _, c := range corrections {
		if cfg.Find(c.Subshell) < 0 {
			return false
		}
	}
	return true
}

// DropEmpty removes entries holding no electrons, preserving order.
func DropEmpty(cfg core.Configuration) core.Configuration {
	out := make(core.Configuration, 0, len(cfg))
	for _, e := range cfg {
		if e.Electrons > 0 {
			out = append(out, e)
		}
	}
	return out
}

// GroundState fills z and applies its exception, if any.
func GroundState(z core.AtomicNumber) core.Configuration {
	return ApplyExceptions(Fill(z), z)
}
