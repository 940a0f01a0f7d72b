package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/config"
	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/internal/elements"
	"github.com/leapstack-labs/atomview/pkg/core"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Elements *elements.Table
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with reference data and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	table, err := elements.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load element data: %w", err)
	}
	logger.Debug("element data loaded", slog.Int("elements", table.Len()))

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Elements: table,
		Renderer: r,
	}, nil
}

// Resolve turns a command argument into an atomic number. Without an
// argument the configured default element is used.
func (c *CommandContext) Resolve(args []string) (core.AtomicNumber, error) {
	query := c.Cfg.DefaultElement
	if len(args) > 0 {
		query = args[0]
	}
	z, err := c.Elements.Resolve(query)
	if err != nil {
		return 0, err
	}
	c.Logger.Debug("resolved element", slog.String("query", query), slog.Int("z", int(z)))
	return z, nil
}

// Describe resolves args and runs the configuration pipeline.
func (c *CommandContext) Describe(args []string) (*electron.Atom, error) {
	z, err := c.Resolve(args)
	if err != nil {
		return nil, err
	}
	atom, err := electron.Describe(z, c.Elements)
	if err != nil {
		return nil, err
	}
	if atom.Element == nil {
		c.Logger.Warn("no reference data for element", slog.Int("z", int(z)))
	}
	return atom, nil
}

// ConfigString returns the configuration in display or plain form.
func (c *CommandContext) ConfigString(atom *electron.Atom) string {
	if c.Cfg.Plain {
		return atom.Plain
	}
	return atom.Display
}

// Title returns the element heading, or a generic one when no reference
// record exists.
func (c *CommandContext) Title(atom *electron.Atom) string {
	if atom.Element == nil {
		return fmt.Sprintf("Element %d", atom.Number)
	}
	if c.Cfg.Plain {
		return fmt.Sprintf("%d %s — %s", atom.Number, atom.Element.Symbol, atom.Element.Name)
	}
	return atom.Label
}

// Helper functions shared across commands

// getConfig returns the current configuration, or defaults when none was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// formatShells renders a distribution as "K2 L8 M1".
func formatShells(shells core.ShellDistribution) string {
	parts := make([]string, len(shells))
	for i, n := range shells {
		parts[i] = core.ShellName(i+1) + strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

const estimatedMarker = "(estimated)"

// formatNeutrons appends an estimate marker when no reference weight was used.
func formatNeutrons(atom *electron.Atom) string {
	if atom.NeutronsEstimated {
		return fmt.Sprintf("%d %s", atom.Neutrons, estimatedMarker)
	}
	return strconv.Itoa(atom.Neutrons)
}

// formatWeight renders an atomic weight without trailing zeros.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
