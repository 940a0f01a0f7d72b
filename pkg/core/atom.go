package core

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// AtomicNumber
// =============================================================================

// AtomicNumber identifies an element by its proton count.
type AtomicNumber int

// Bounds of the supported periodic table.
const (
	MinAtomicNumber AtomicNumber = 1
	MaxAtomicNumber AtomicNumber = 118
)

// Validate reports whether the atomic number lies within the supported table.
func (z AtomicNumber) Validate() error {
	if z < MinAtomicNumber || z > MaxAtomicNumber {
		return &RangeError{Value: int(z)}
	}
	return nil
}

// =============================================================================
// SubshellLabel
// =============================================================================

// SubshellLabel is the angular-momentum letter of a subshell.
type SubshellLabel byte

// Subshell labels in order of increasing angular momentum.
const (
	S SubshellLabel = 's'
	P SubshellLabel = 'p'
	D SubshellLabel = 'd'
	F SubshellLabel = 'f'
)

// Capacity returns the maximum number of electrons the subshell can hold.
// Unknown labels have zero capacity.
func (l SubshellLabel) Capacity() int {
	switch l {
	case S:
		return 2
	case P:
		return 6
	case D:
		return 10
	case F:
		return 14
	default:
		return 0
	}
}

// String returns the label letter.
func (l SubshellLabel) String() string {
	return string(rune(l))
}

// MarshalText encodes the label as its letter.
func (l SubshellLabel) MarshalText() ([]byte, error) {
	return []byte{byte(l)}, nil
}

// UnmarshalText decodes a single-letter label.
func (l *SubshellLabel) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid subshell label %q", text)
	}
	parsed, ok := ParseSubshellLabel(text[0])
	if !ok {
		return fmt.Errorf("invalid subshell label %q", text)
	}
	*l = parsed
	return nil
}

// ParseSubshellLabel converts a letter to a SubshellLabel.
// Returns the label and true if valid, or zero and false otherwise.
func ParseSubshellLabel(b byte) (SubshellLabel, bool) {
	switch l := SubshellLabel(b); l {
	case S, P, D, F:
		return l, true
	default:
		return 0, false
	}
}

// =============================================================================
// SubshellEntry / Configuration
// =============================================================================

// SubshellEntry is the occupancy of one subshell.
type SubshellEntry struct {
	N         int           `json:"n"`
	Label     SubshellLabel `json:"label"`
	Electrons int           `json:"electrons"`
}

// Key returns the subshell identifier, e.g. "3d".
func (e SubshellEntry) Key() string {
	return strconv.Itoa(e.N) + e.Label.String()
}

// String returns the plain token form, e.g. "3d10".
func (e SubshellEntry) String() string {
	return e.Key() + strconv.Itoa(e.Electrons)
}

// Configuration is an ordered list of subshell entries in Aufbau fill order.
// Entries are never sorted by (n, label); 4s precedes 3d.
type Configuration []SubshellEntry

// Total returns the number of electrons across all entries.
func (c Configuration) Total() int {
	total := 0
	for _, e := range c {
		total += e.Electrons
	}
	return total
}

// Find returns the index of the entry with the given key, or -1.
func (c Configuration) Find(key string) int {
	for i, e := range c {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the configuration.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// Tokens returns the plain token of every entry in order.
func (c Configuration) Tokens() []string {
	tokens := make([]string, len(c))
	for i, e := range c {
		tokens[i] = e.String()
	}
	return tokens
}

// String returns the space-separated plain form.
func (c Configuration) String() string {
	return strings.Join(c.Tokens(), " ")
}

// =============================================================================
// ShellDistribution
// =============================================================================

// ShellDistribution holds per-shell electron totals, innermost first.
type ShellDistribution []int

// Total returns the number of electrons across all shells.
func (s ShellDistribution) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// ShellName returns the conventional letter (K, L, M, ...) for a principal
// shell number, falling back to "n=<n>" past Q.
func ShellName(n int) string {
	const names = "KLMNOPQ"
	if n >= 1 && n <= len(names) {
		return names[n-1 : n]
	}
	return fmt.Sprintf("n=%d", n)
}

// =============================================================================
// Exceptions
// =============================================================================

// Correction adjusts the electron count of one subshell.
type Correction struct {
	Subshell string `json:"subshell" yaml:"subshell"`
	Delta    int    `json:"delta" yaml:"delta"`
}

// ExceptionRule maps an atomic number to the ordered corrections that turn
// its idealized configuration into the observed ground state.
type ExceptionRule map[AtomicNumber][]Correction
