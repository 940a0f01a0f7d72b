package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
)

// ConfigOutput is the JSON output for the config command.
type ConfigOutput struct {
	Number        core.AtomicNumber  `json:"number"`
	Plain         string             `json:"plain"`
	Display       string             `json:"display"`
	Configuration core.Configuration `json:"configuration"`
}

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config [element]",
		Aliases: []string{"configuration"},
		Short:   "Print the ground-state electron configuration",
		Long: `Print the ground-state electron configuration of an element in Aufbau
fill order, with known empirical exceptions applied.

Electron counts are written as superscripts unless --plain is given.`,
		Example: `  # Chromium: 1s² 2s² 2p⁶ 3s² 3p⁶ 4s¹ 3d⁵
  atomview config Cr

  # Plain digits for scripting
  atomview config 24 --plain`,
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
				return r.JSON(ConfigOutput{
					Number:        atom.Number,
					Plain:         atom.Plain,
					Display:       atom.Display,
					Configuration: atom.Configuration,
				})
			}
			r.Println(cmdCtx.ConfigString(atom))
			return nil
		},
	}

	return cmd
}
