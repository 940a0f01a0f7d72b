package commands

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// TableOptions holds options for the table command.
type TableOptions struct {
	From int
	To   int
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	opts := &TableOptions{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List elements with their configurations",
		Long: `List a range of elements with symbol, name, atomic weight, ground-state
configuration and shell distribution.

The default range comes from the table.from and table.to config keys.`,
		Example: `  # All elements
  atomview table

  # The first transition series
  atomview table --from 21 --to 30

  # As JSON
  atomview table --to 10 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.From, "from", 0, "First atomic number (default from config)")
	cmd.Flags().IntVar(&opts.To, "to", 0, "Last atomic number (default from config)")

	return cmd
}

func runTable(cmd *cobra.Command, opts *TableOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	from, to := cmdCtx.Cfg.Table.From, cmdCtx.Cfg.Table.To
	if cmd.Flags().Changed("from") {
		from = opts.From
	}
	if cmd.Flags().Changed("to") {
		to = opts.To
	}
	if err := core.AtomicNumber(from).Validate(); err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	if err := core.AtomicNumber(to).Validate(); err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	if from > to {
		return fmt.Errorf("--from (%d) must not exceed --to (%d)", from, to)
	}
	cmdCtx.Logger.Debug("listing elements", slog.Int("from", from), slog.Int("to", to))

	atoms, err := describeRange(cmd.Context(), cmdCtx, core.AtomicNumber(from), core.AtomicNumber(to))
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(atoms)
	}

	rows := make([][]string, len(atoms))
	for i, atom := range atoms {
		symbol, name, weight := "", "", ""
		if atom.Element != nil {
			symbol = atom.Element.Symbol
			name = atom.Element.Name
			weight = formatWeight(atom.Element.AtomicWeight)
		}
		rows[i] = []string{
			strconv.Itoa(int(atom.Number)),
			symbol,
			name,
			weight,
			cmdCtx.ConfigString(atom),
			formatShells(atom.Shells),
		}
	}
	r.Table([]string{"Z", "Symbol", "Name", "Weight", "Configuration", "Shells"}, rows)
	return nil
}

// describeRange runs the pipeline for every element in [from, to].
// Results keep atomic-number order.
func describeRange(ctx context.Context, cmdCtx *CommandContext, from, to core.AtomicNumber) ([]*electron.Atom, error) {
	atoms := make([]*electron.Atom, int(to-from)+1)

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for z := from; z <= to; z++ {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			atom, err := electron.Describe(z, cmdCtx.Elements)
			if err != nil {
				return err
			}
			atoms[z-from] = atom
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return atoms, nil
}
