package electron

import "github.com/leapstack-labs/atomview/pkg/core"

// Atom is the complete derived model of one neutral atom.
type Atom struct {
	Number            core.AtomicNumber      `json:"number"`
	Protons           int                    `json:"protons"`
	Electrons         int                    `json:"electrons"`
	Neutrons          int                    `json:"neutrons"`
	NeutronsEstimated bool                   `json:"neutrons_estimated"`
	Configuration     core.Configuration     `json:"configuration"`
	Plain             string                 `json:"plain"`
	Display           string                 `json:"display"`
	Shells            core.ShellDistribution `json:"shells"`
	Element           *core.ElementRecord    `json:"element,omitempty"`
	Label             string                 `json:"label,omitempty"`
}

// Describe runs the full pipeline for z. lookup may be nil or lack a record
// for z; the neutron count then falls back to an estimate and Label is empty.
func Describe(z core.AtomicNumber, lookup core.ElementLookup) (*Atom, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}

	cfg := GroundState(z)
	neutrons, estimated := estimateNeutrons(z, lookup)

	atom := &Atom{
		Number:            z,
		Protons:           int(z),
		Electrons:         cfg.Total(),
		Neutrons:          neutrons,
		NeutronsEstimated: estimated,
		Configuration:     cfg,
		Plain:             Format(cfg),
		Display:           Display(cfg),
		Shells:            ShellDistribution(cfg),
	}

	if lookup != nil {
		if rec, ok := lookup.Lookup(z); ok {
			atom.Element = &rec
			atom.Label = Label(z, rec)
		}
	}
	return atom, nil
}

// Label renders the element heading, e.g. "⁸O — Oxygen".
func Label(z core.AtomicNumber, rec core.ElementRecord) string {
	return ToSuperscript(int(z)) + rec.Symbol + " — " + rec.Name
}
