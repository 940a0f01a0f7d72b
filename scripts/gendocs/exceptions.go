package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/atomview/internal/elements"
	"github.com/leapstack-labs/atomview/pkg/core"
	"github.com/leapstack-labs/atomview/pkg/electron"
)

// generateExceptionDocs generates the Aufbau exception reference page.
func generateExceptionDocs(outDir string) error {
	log.Printf("Generating exception docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	table, err := elements.Default()
	if err != nil {
		return err
	}

	rules := electron.Exceptions()
	numbers := make([]core.AtomicNumber, 0, len(rules))
	for z := range rules {
		numbers = append(numbers, z)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	w := NewMarkdownWriter()
	w.Frontmatter("Aufbau Exceptions", "Elements whose ground state deviates from Aufbau filling")
	w.GeneratedMarker()

	w.Header(1, "Aufbau Exceptions")
	w.Paragraph("atomview corrects " + Bold(fmt.Sprintf("%d elements", len(numbers))) + " whose observed ground state differs from idealized Aufbau filling. Corrections move electrons between subshells; subshells left empty are dropped.")

	var rows [][]string
	for _, z := range numbers {
		rec, _ := table.Lookup(z)
		var corrections []string
		for _, c := range rules[z] {
			corrections = append(corrections, fmt.Sprintf("%s%+d", c.Subshell, c.Delta))
		}
		applied := "yes"
		if !electron.Applicable(electron.Fill(z), rules[z]) {
			applied = "not applied"
		}
		rows = append(rows, []string{
			strconv.Itoa(int(z)),
			rec.Symbol,
			rec.Name,
			InlineCode(strings.Join(corrections, ", ")),
			InlineCode(electron.Display(electron.GroundState(z))),
			applied,
		})
	}
	w.Table([]string{"Z", "Symbol", "Name", "Corrections", "Ground State", "Applied"}, rows)
	w.Paragraph("Rules marked not applied target a subshell that Aufbau filling has not reached, so the ground state keeps its Aufbau form.")

	if err := os.WriteFile(filepath.Join(outDir, "exceptions.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated exceptions.md")
	return nil
}
