package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
)

// ShellsOutput is the JSON output for the shells command.
type ShellsOutput struct {
	Number core.AtomicNumber      `json:"number"`
	Shells core.ShellDistribution `json:"shells"`
}

// NewShellsCommand creates the shells command.
func NewShellsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shells [element]",
		Short: "Show electrons per principal shell",
		Long: `Show how many electrons occupy each principal shell, innermost first.

Shells are named K, L, M, N, O, P, Q for n = 1 through 7.`,
		Example: `  # Iron: K2 L8 M14 N2
  atomview shells Fe

  # As JSON
  atomview shells 26 -o json`,
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
				return r.JSON(ShellsOutput{Number: atom.Number, Shells: atom.Shells})
			}

			rows := make([][]string, len(atom.Shells))
			for i, n := range atom.Shells {
				rows[i] = []string{core.ShellName(i + 1), strconv.Itoa(i + 1), strconv.Itoa(n)}
			}
			r.Header(2, cmdCtx.Title(atom))
			r.Table([]string{"Shell", "n", "Electrons"}, rows)
			return nil
		},
	}

	return cmd
}
