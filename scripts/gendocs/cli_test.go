package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPage(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	for _, name := range []string{"index", "show", "config", "shells", "neutrons", "table", "exceptions", "version", "completion"} {
		assert.FileExists(t, filepath.Join(dir, name+".md"))
	}

	index := readPage(t, dir, "index.md")
	assert.Contains(t, index, "| `--plain` | bool | `false` | Print electron counts with plain digits |")
	assert.Contains(t, index, "| `-o, --output` | string |")
	assert.Contains(t, index, "| [`show`](/cli/show) | `[element]` | auto, text, markdown, json |")
	assert.Contains(t, index, "| [`version`](/cli/version) |  | plain text |")
	assert.Contains(t, index, "| `ATOMVIEW_TABLE__FROM` | `table.from` |")
	assert.Contains(t, index, "| `caesium` | 55 | Alternate spelling |")

	show := readPage(t, dir, "show.md")
	assert.Contains(t, show, "atomview show [element] [flags]")
	assert.Contains(t, show, "| `--plain` | bool | `false` |")
	assert.Contains(t, show, "## Element Argument")
	assert.Contains(t, show, "| `Iron` | 26 | Name, any case |")
	assert.Contains(t, show, "| `json` | Full atom object |")
	assert.Contains(t, show, "atomview show Cr\n")

	config := readPage(t, dir, "config.md")
	assert.Contains(t, config, "Aliases: `configuration`")

	table := readPage(t, dir, "table.md")
	assert.Contains(t, table, "## Options")
	assert.Contains(t, table, "| `--from` | int |")
	assert.NotContains(t, table, "## Element Argument")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "ATOMVIEW_OUTPUT", envName("output"))
	assert.Equal(t, "ATOMVIEW_DEFAULT_ELEMENT", envName("default_element"))
	assert.Equal(t, "ATOMVIEW_TABLE__TO", envName("table.to"))
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uniform", "  # Chromium\n  atomview config Cr\n", "# Chromium\natomview config Cr"},
		{"blank line kept", "  atomview show\n\n  atomview show Au", "atomview show\n\natomview show Au"},
		{"nested", "  a\n    b", "a\n  b"},
		{"none", "atomview exceptions", "atomview exceptions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedent(tt.in))
		})
	}
}
