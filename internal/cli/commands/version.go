package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/elements"
	"github.com/leapstack-labs/atomview/pkg/core"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and reference data coverage",
		Long: `Display the atomview version together with the size of the embedded
element table and the number of Aufbau exceptions it corrects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := elements.Default()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "atomview v%s\n", version)
			_, _ = fmt.Fprintf(w, "Elements:   %d of %d (Z %d-%d)\n",
				table.Len(), int(core.MaxAtomicNumber-core.MinAtomicNumber)+1,
				core.MinAtomicNumber, core.MaxAtomicNumber)
			_, _ = fmt.Fprintf(w, "Exceptions: %d\n", len(electron.Exceptions()))
			return nil
		},
	}
}
