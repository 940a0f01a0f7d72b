package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Shells")
	w.Table([]string{"Shell", "Electrons"}, [][]string{{"K", "2"}, {"a|b", "8"}})
	w.BulletList([]string{InlineCode("show"), Bold("config")})

	want := "## Shells\n\n" +
		"| Shell | Electrons |\n| --- | --- |\n| K | 2 |\n| a\\|b | 8 |\n\n" +
		"- `show`\n- **config**\n\n"
	assert.Equal(t, want, string(w.Bytes()))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Show the full model", cleanDescription("Show the   full\nmodel."))
}

func TestGetConfigSchema(t *testing.T) {
	fields := getConfigSchema()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"output", "verbose", "log_level", "default_element", "plain", "table.from", "table.to"}, names)
	assert.Equal(t, "8", fields[3].Default)
}

func TestGenerateExceptionDocs(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, generateExceptionDocs(dir))
	assert.FileExists(t, dir+"/exceptions.md")

	page := readPage(t, dir, "exceptions.md")
	assert.Contains(t, page, "| 24 | Cr | Chromium |")
	assert.Equal(t, 3, strings.Count(page, "| not applied |"), "La, Ac and Th")
}
