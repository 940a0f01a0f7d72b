package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/core"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// ExceptionInfo describes one empirical exception to Aufbau filling.
type ExceptionInfo struct {
	Number      core.AtomicNumber `json:"number"`
	Symbol      string            `json:"symbol,omitempty"`
	Name        string            `json:"name,omitempty"`
	Corrections []core.Correction `json:"corrections"`
	Aufbau      string            `json:"aufbau"`
	Observed    string            `json:"observed"`
	// Applied is false when a correction targets a subshell that Aufbau
	// filling has not reached, in which case the whole set is skipped.
	Applied bool `json:"applied"`
}

const notApplied = "not applied"

// NewExceptionsCommand creates the exceptions command.
func NewExceptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exceptions",
		Short: "List known exceptions to Aufbau filling",
		Long: `List the elements whose observed ground state deviates from idealized
Aufbau filling, with the corrections applied and the affected subshells
before and after correction.`,
		Example: `  atomview exceptions
  atomview exceptions -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			infos := buildExceptionInfos(cmdCtx)

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(infos)
			}

			rows := make([][]string, len(infos))
			for i, info := range infos {
				aufbau, observed := info.Aufbau, info.Observed
				if !cmdCtx.Cfg.Plain {
					aufbau, observed = electron.Superscript(aufbau), electron.Superscript(observed)
				}
				if !info.Applied {
					observed += " (" + notApplied + ")"
				}
				rows[i] = []string{
					strconv.Itoa(int(info.Number)),
					info.Symbol,
					info.Name,
					formatCorrections(info.Corrections),
					aufbau,
					observed,
				}
			}
			r.Header(1, fmt.Sprintf("Aufbau Exceptions (%d total)", len(infos)))
			r.Table([]string{"Z", "Symbol", "Name", "Corrections", "Aufbau", "Observed"}, rows)
			return nil
		},
	}

	return cmd
}

func buildExceptionInfos(cmdCtx *CommandContext) []ExceptionInfo {
	table := electron.Exceptions()
	numbers := make([]core.AtomicNumber, 0, len(table))
	for z := range table {
		numbers = append(numbers, z)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	infos := make([]ExceptionInfo, 0, len(numbers))
	for _, z := range numbers {
		corrections := table[z]
		ideal := electron.Fill(z)
		observed := electron.ApplyExceptions(ideal, z)

		info := ExceptionInfo{
			Number:      z,
			Corrections: corrections,
			Aufbau:      affectedSubshells(ideal, corrections),
			Observed:    affectedSubshells(observed, corrections),
			Applied:     electron.Applicable(ideal, corrections),
		}
		if rec, ok := cmdCtx.Elements.Lookup(z); ok {
			info.Symbol = rec.Symbol
			info.Name = rec.Name
		}
		infos = append(infos, info)
	}
	return infos
}

// affectedSubshells renders the subshells named by corrections, in
// correction order. Subshells absent from cfg are shown with zero electrons.
func affectedSubshells(cfg core.Configuration, corrections []core.Correction) string {
	tokens := make([]string, len(corrections))
	for i, c := range corrections {
		electrons := 0
		if idx := cfg.Find(c.Subshell); idx >= 0 {
			electrons = cfg[idx].Electrons
		}
		tokens[i] = c.Subshell + strconv.Itoa(electrons)
	}
	return strings.Join(tokens, " ")
}

// formatCorrections renders corrections as "4s-1, 3d+1".
func formatCorrections(corrections []core.Correction) string {
	parts := make([]string, len(corrections))
	for i, c := range corrections {
		parts[i] = fmt.Sprintf("%s%+d", c.Subshell, c.Delta)
	}
	return strings.Join(parts, ", ")
}
