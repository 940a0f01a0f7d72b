package electron

import "github.com/leapstack-labs/atomview/pkg/core"

// Subshell is a slot in the Aufbau filling order.
type Subshell struct {
	N     int
	Label core.SubshellLabel
}

// Key returns the subshell identifier, e.g. "4f".
func (s Subshell) Key() string {
	return core.SubshellEntry{N: s.N, Label: s.Label}.Key()
}

// Capacity returns the maximum electron count of the subshell.
func (s Subshell) Capacity() int {
	return s.Label.Capacity()
}

// aufbauOrder lists subshells by increasing energy (Madelung rule).
// Cumulative capacity is exactly MaxAtomicNumber.
var aufbauOrder = [...]Subshell{
	{1, core.S},
	{2, core.S}, {2, core.P},
	{3, core.S}, {3, core.P},
	{4, core.S}, {3, core.D}, {4, core.P},
	{5, core.S}, {4, core.D}, {5, core.P},
	{6, core.S}, {4, core.F}, {5, core.D}, {6, core.P},
	{7, core.S}, {5, core.F}, {6, core.D}, {7, core.P},
}

// AufbauOrder returns a copy of the filling order.
func AufbauOrder() []Subshell {
	out := make([]Subshell, len(aufbauOrder))
	copy(out, aufbauOrder[:])
	return out
}

// Fill distributes z electrons over subshells in Aufbau order, filling each
// to capacity before moving on. It never emits empty entries. Numbers beyond
// the table's total capacity stop once the last subshell is full.
func Fill(z core.AtomicNumber) core.Configuration {
	remaining := int(z)
	var cfg core.Configuration
	for _, sub := range aufbauOrder {
		if remaining <= 0 {
			break
		}
		filled := min(remaining, sub.Capacity())
		cfg = append(cfg, core.SubshellEntry{N: sub.N, Label: sub.Label, Electrons: filled})
		remaining -= filled
	}
	return cfg
}
