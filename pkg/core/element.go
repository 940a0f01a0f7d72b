package core

// ElementRecord is reference data for one element.
type ElementRecord struct {
	Number       AtomicNumber `json:"number" yaml:"number"`
	Symbol       string       `json:"symbol" yaml:"symbol"`
	Name         string       `json:"name" yaml:"name"`
	AtomicWeight float64      `json:"atomic_weight" yaml:"atomic_weight"`
}

// ElementLookup provides point lookups of reference data by atomic number.
// A missing record is a normal result, not an error.
type ElementLookup interface {
	Lookup(z AtomicNumber) (ElementRecord, bool)
}
