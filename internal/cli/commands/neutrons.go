package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
)

// NeutronsOutput is the JSON output for the neutrons command.
type NeutronsOutput struct {
	Number    core.AtomicNumber `json:"number"`
	Neutrons  int               `json:"neutrons"`
	Estimated bool              `json:"estimated"`
}

// NewNeutronsCommand creates the neutrons command.
func NewNeutronsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neutrons [element]",
		Short: "Estimate the neutron count of an element",
		Long: `Estimate the neutron count as the rounded difference between the
reference atomic weight and the atomic number.

Elements without reference data fall back to round(Z * 1.1), which is a
rough approximation and is marked as estimated.`,
		Example: `  atomview neutrons O
  atomview neutrons 92 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			atom, err := cmdCtx.Describe(args)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(NeutronsOutput{
					Number:    atom.Number,
					Neutrons:  atom.Neutrons,
					Estimated: atom.NeutronsEstimated,
				})
			}
			r.Println(formatNeutrons(atom))
			return nil
		},
	}

	return cmd
}
