package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [element]",
		Short: "Show the full electron model of an element",
		Long: `Show protons, neutrons, electrons, the ground-state electron configuration
and the per-shell electron distribution of an element.

The element may be given as an atomic number (1-118), a symbol or a name.
Without an argument the configured default element is shown.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Show the default element (oxygen)
  atomview show

  # Show chromium by number, symbol or name
  atomview show 24
  atomview show Cr
  atomview show chromium

  # Show as JSON
  atomview show Au --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args)
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	atom, err := cmdCtx.Describe(args)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(atom)
	case output.ModeMarkdown:
		return showMarkdown(cmdCtx, atom)
	default:
		return showText(cmdCtx, atom)
	}
}

// showText outputs the atom in styled text format.
func showText(cmdCtx *CommandContext, atom *electron.Atom) error {
	r := cmdCtx.Renderer
	styles := r.Styles()

	r.Println("")
	r.Header(1, cmdCtx.Title(atom))
	r.Println("")
	r.KeyValue("Protons", strconv.Itoa(atom.Protons))
	neutrons := strconv.Itoa(atom.Neutrons)
	if atom.NeutronsEstimated {
		neutrons += " " + styles.Muted.Render(estimatedMarker)
	}
	r.KeyValue("Neutrons", neutrons)
	r.KeyValue("Electrons", strconv.Itoa(atom.Electrons))
	if atom.Element != nil {
		r.KeyValue("Weight", formatWeight(atom.Element.AtomicWeight))
	}
	r.KeyValue("Config", styles.Accent.Render(cmdCtx.ConfigString(atom)))
	r.KeyValue("Shells", formatShells(atom.Shells))
	r.Println("")
	return nil
}

// showMarkdown outputs the atom in markdown format.
func showMarkdown(cmdCtx *CommandContext, atom *electron.Atom) error {
	r := cmdCtx.Renderer

	r.Header(1, cmdCtx.Title(atom))
	r.KeyValue("Protons", strconv.Itoa(atom.Protons))
	r.KeyValue("Neutrons", formatNeutrons(atom))
	r.KeyValue("Electrons", strconv.Itoa(atom.Electrons))
	if atom.Element != nil {
		r.KeyValue("Weight", formatWeight(atom.Element.AtomicWeight))
	}
	r.KeyValue("Configuration", "`"+cmdCtx.ConfigString(atom)+"`")
	r.KeyValue("Shells", formatShells(atom.Shells))
	r.Println("")
	return nil
}
