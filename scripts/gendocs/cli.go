package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/atomview/internal/cli"
	"github.com/leapstack-labs/atomview/internal/cli/config"
	"github.com/leapstack-labs/atomview/internal/cli/output"
	"github.com/leapstack-labs/atomview/internal/elements"
)

// elementQueries are sample element arguments, resolved against the
// embedded table when the docs are generated.
var elementQueries = []struct {
	query string
	form  string
}{
	{"26", "Atomic number, 1-118"},
	{"Fe", "Symbol"},
	{"fe", "Symbol, any case"},
	{"Iron", "Name, any case"},
	{"caesium", "Alternate spelling"},
}

// modeDescriptions explains what each --output value selects.
var modeDescriptions = map[output.Mode]string{
	output.ModeAuto:     "text on a terminal, markdown when piped",
	output.ModeText:     "styled text for a terminal",
	output.ModeMarkdown: "markdown for documents and agents",
	output.ModeJSON:     "indented JSON",
}

// commandOutput describes what a command prints in each output mode.
// Commands without an entry ignore --output.
var commandOutput = map[string]map[output.Mode]string{
	"show": {
		output.ModeText:     "Styled summary of counts, configuration and shells",
		output.ModeMarkdown: "Heading followed by a bullet list",
		output.ModeJSON:     "Full atom object",
	},
	"config": {
		output.ModeText:     "Configuration on one line",
		output.ModeMarkdown: "Configuration on one line",
		output.ModeJSON:     "Object with plain, display and per-subshell forms",
	},
	"shells": {
		output.ModeText:     "Shell table",
		output.ModeMarkdown: "Heading and pipe table",
		output.ModeJSON:     "Object with the electron count per shell",
	},
	"neutrons": {
		output.ModeText:     "Neutron count",
		output.ModeMarkdown: "Neutron count",
		output.ModeJSON:     "Object with the count and an estimated flag",
	},
	"table": {
		output.ModeText:     "Element table",
		output.ModeMarkdown: "Pipe table",
		output.ModeJSON:     "Array of atom objects",
	},
	"exceptions": {
		output.ModeText:     "Exception table; skipped rules are marked not applied",
		output.ModeMarkdown: "Pipe table; skipped rules are marked not applied",
		output.ModeJSON:     "Array of exceptions with an applied flag",
	},
}

// generateCLIDocs writes index.md and one page per command into outDir.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resolved, err := resolveElementQueries()
	if err != nil {
		return err
	}

	rootCmd := cli.NewRootCmd()
	pages := documentedCommands(rootCmd)

	if err := writePage(outDir, "index.md", generateCLIIndex(rootCmd, pages, resolved)); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	for _, cmd := range pages {
		if err := writePage(outDir, cmd.Name()+".md", generateCommandPage(cmd, resolved)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}

func documentedCommands(rootCmd *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// resolveElementQueries turns elementQueries into table rows.
func resolveElementQueries() ([][]string, error) {
	table, err := elements.Default()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(elementQueries))
	for i, q := range elementQueries {
		z, err := table.Resolve(q.query)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", q.query, err)
		}
		rows[i] = []string{InlineCode(q.query), strconv.Itoa(int(z)), q.form}
	}
	return rows, nil
}

func takesElement(cmd *cobra.Command) bool {
	return strings.Contains(cmd.Use, "[element]")
}

// generateCLIIndex builds the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, cmds []*cobra.Command, resolved [][]string) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for atomview")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(cleanDescription(rootCmd.Long) + ".")
	w.CodeBlock("bash", "atomview <command> [element] [options]")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range cmds {
		args := ""
		if takesElement(cmd) {
			args = InlineCode("[element]")
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			args,
			strings.Join(supportedModes(cmd), ", "),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Arguments", "Output", "Description"}, rows)

	writeElementSection(w, resolved)

	w.Header(2, "Output Modes")
	w.Paragraph("Select a mode with " + InlineCode("--output") + " or the " + InlineCode("output") + " config key.")
	var modeRows [][]string
	for _, m := range output.Modes {
		modeRows = append(modeRows, []string{InlineCode(string(m)), modeDescriptions[m]})
	}
	w.Table([]string{"Mode", "Renders"}, modeRows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph("Nested keys join with a double underscore. Flags override environment variables, which override the config file.")
	var envRows [][]string
	for _, f := range getConfigSchema() {
		envRows = append(envRows, []string{InlineCode(envName(f.Name)), InlineCode(f.Name), f.Description})
	}
	w.Table([]string{"Variable", "Config Key", "Description"}, envRows)

	return w
}

// envName maps a config key such as table.from to ATOMVIEW_TABLE__FROM.
func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

func writeElementSection(w *MarkdownWriter, resolved [][]string) {
	w.Header(2, "Element Argument")
	w.Paragraph("An element may be named by atomic number, symbol or name. Symbols and names ignore case. " +
		"Without an argument the " + InlineCode("default_element") + " config key is used.")
	w.Table([]string{"Example", "Resolves To", "Form"}, resolved)
}

// supportedModes lists the --output values a command honors.
func supportedModes(cmd *cobra.Command) []string {
	modes, ok := commandOutput[cmd.Name()]
	if !ok {
		return []string{"plain text"}
	}
	var names []string
	for _, m := range output.Modes {
		if _, ok := modes[m]; ok || m == output.ModeAuto {
			names = append(names, string(m))
		}
	}
	return names
}

// generateCommandPage builds the reference page for one command.
func generateCommandPage(cmd *cobra.Command, resolved [][]string) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if len(cmd.Aliases) > 0 {
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.Paragraph("Aliases: " + strings.Join(aliases, ", "))
	}

	if takesElement(cmd) {
		writeElementSection(w, resolved)
	}

	if modes, ok := commandOutput[cmd.Name()]; ok {
		w.Header(2, "Output")
		var rows [][]string
		for _, m := range output.Modes {
			if desc, ok := modes[m]; ok {
				rows = append(rows, []string{InlineCode(string(m)), desc})
			}
		}
		w.Paragraph(InlineCode("auto") + " picks " + InlineCode("text") + " on a terminal and " + InlineCode("markdown") + " otherwise.")
		w.Table([]string{"Mode", "Prints"}, rows)
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w
}

// writeFlagsTable writes one row per visible flag.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		def := ""
		if f.DefValue != "" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{InlineCode(name), f.Value.Type(), def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Type", "Default", "Description"}, rows)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	prefix, seen := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !seen {
			prefix, seen = indent, true
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}
