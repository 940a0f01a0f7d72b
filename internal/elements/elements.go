// Package elements provides the periodic-table reference data used to label
// atoms and estimate neutron counts.
//
// The data set ships embedded in the binary and is decoded once on first use.
// A Table is immutable after construction and safe for concurrent use.
package elements

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/atomview/pkg/core"
)

//go:embed elements.yaml
var elementsYAML []byte

var (
	// ErrInvalidTable is returned when reference data fails validation.
	ErrInvalidTable = errors.New("invalid element table")
	// ErrUnknownElement is returned when a query matches no element.
	ErrUnknownElement = errors.New("unknown element")
)

// alternateNames maps accepted spellings onto the names used in the table.
var alternateNames = map[string]string{
	"aluminum": "aluminium",
	"cesium":   "caesium",
	"sulphur":  "sulfur",
}

// Table is a read-only set of element records keyed by atomic number.
type Table struct {
	records  []core.ElementRecord
	byNumber map[core.AtomicNumber]int
	bySymbol map[string]int
	byName   map[string]int
}

type document struct {
	Elements []core.ElementRecord `yaml:"elements"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded periodic table.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(elementsYAML)
	})
	return defaultTable, defaultErr
}

// MustDefault is like Default but panics if the embedded data is invalid.
func MustDefault() *Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse decodes and validates a YAML element document.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidTable)
	}
	return New(doc.Elements...)
}

// New builds a table from records. Gaps in the numbering are allowed;
// lookups for missing numbers simply report no record.
func New(records ...core.ElementRecord) (*Table, error) {
	t := &Table{
		records:  make([]core.ElementRecord, len(records)),
		byNumber: make(map[core.AtomicNumber]int, len(records)),
		bySymbol: make(map[string]int, len(records)),
		byName:   make(map[string]int, len(records)),
	}
	copy(t.records, records)
	sort.SliceStable(t.records, func(i, j int) bool {
		return t.records[i].Number < t.records[j].Number
	})

	for i, rec := range t.records {
		if err := validateRecord(rec); err != nil {
			return nil, err
		}
		if _, dup := t.byNumber[rec.Number]; dup {
			return nil, fmt.Errorf("%w: duplicate atomic number %d", ErrInvalidTable, rec.Number)
		}
		symbol, name := fold(rec.Symbol), fold(rec.Name)
		if _, dup := t.bySymbol[symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, rec.Symbol)
		}
		if _, dup := t.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidTable, rec.Name)
		}
		t.byNumber[rec.Number] = i
		t.bySymbol[symbol] = i
		t.byName[name] = i
	}
	return t, nil
}

func validateRecord(rec core.ElementRecord) error {
	if err := rec.Number.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if strings.TrimSpace(rec.Symbol) == "" {
		return fmt.Errorf("%w: element %d has no symbol", ErrInvalidTable, rec.Number)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("%w: element %d has no name", ErrInvalidTable, rec.Number)
	}
	if rec.AtomicWeight <= 0 {
		return fmt.Errorf("%w: element %d has non-positive atomic weight %g", ErrInvalidTable, rec.Number, rec.AtomicWeight)
	}
	return nil
}

// Lookup returns the record for z. A nil table holds no records.
func (t *Table) Lookup(z core.AtomicNumber) (core.ElementRecord, bool) {
	if t == nil {
		return core.ElementRecord{}, false
	}
	i, ok := t.byNumber[z]
	if !ok {
		return core.ElementRecord{}, false
	}
	return t.records[i], true
}

// All returns every record in ascending atomic-number order.
func (t *Table) All() []core.ElementRecord {
	if t == nil {
		return nil
	}
	out := make([]core.ElementRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Resolve interprets a user query as an atomic number, element symbol or
// element name. Symbol and name matching ignores case. A numeric query only
// needs to be in range; it does not need a record in the table.
func (t *Table) Resolve(query string) (core.AtomicNumber, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, fmt.Errorf("%w: empty query", ErrUnknownElement)
	}

	if n, err := strconv.Atoi(q); err == nil {
		z := core.AtomicNumber(n)
		if err := z.Validate(); err != nil {
			return 0, err
		}
		return z, nil
	}

	if t != nil {
		key := fold(q)
		if i, ok := t.bySymbol[key]; ok {
			return t.records[i].Number, nil
		}
		if alt, ok := alternateNames[key]; ok {
			key = alt
		}
		if i, ok := t.byName[key]; ok {
			return t.records[i].Number, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, query)
}

// fold normalizes a string for case-insensitive matching.
// Casers are stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
