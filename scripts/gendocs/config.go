package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/atomview/internal/cli/config"
)

// ConfigField represents a configuration key definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Flag        string
	Description string
}

// getConfigSchema returns the configuration keys.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	def := config.Default()
	return []ConfigField{
		{Name: "output", Type: "string", Default: def.OutputFormat, Flag: "--output", Description: "Output format: auto, text, markdown, json"},
		{Name: "verbose", Type: "bool", Default: strconv.FormatBool(def.Verbose), Flag: "--verbose", Description: "Enable debug logging"},
		{Name: "log_level", Type: "string", Default: def.LogLevel, Flag: "--log-level", Description: "Log level: debug, info, warn, error"},
		{Name: "default_element", Type: "string", Default: def.DefaultElement, Flag: "--default-element", Description: "Element used when a command gets no argument"},
		{Name: "plain", Type: "bool", Default: strconv.FormatBool(def.Plain), Flag: "--plain", Description: "Print electron counts with plain digits"},
		{Name: "table.from", Type: "int", Default: strconv.Itoa(def.Table.From), Flag: "--from (table)", Description: "First atomic number listed by the table command"},
		{Name: "table.to", Type: "int", Default: strconv.Itoa(def.Table.To), Flag: "--to (table)", Description: "Last atomic number listed by the table command"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "atomview configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("atomview reads `atomview.yaml` from the current directory, then `~/.atomview/atomview.yaml`. Use `--config` to point at another file.")

	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(f.Default), InlineCode(f.Flag), f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Flag", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: markdown
default_element: Fe
plain: false
table:
  from: 21
  to: 30`)

	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
