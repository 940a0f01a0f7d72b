package electron

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/leapstack-labs/atomview/pkg/core"
)

// Format renders cfg as space-separated plain tokens, e.g. "1s2 2s2 2p4".
func Format(cfg core.Configuration) string {
	return cfg.String()
}

// Display renders cfg with superscript electron counts, e.g. "1s² 2s² 2p⁴".
func Display(cfg core.Configuration) string {
	return Superscript(Format(cfg))
}

var tokenPattern = regexp.MustCompile(`^(\d)([spdf])(\d+)$`)

// Parse reads a configuration from its plain or display form.
// Tokens are separated by whitespace; order is preserved.
func Parse(s string) (core.Configuration, error) {
	fields := strings.Fields(normalizeDigits(s))
	cfg := make(core.Configuration, 0, len(fields))
	for _, tok := range fields {
		m := tokenPattern.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("%w: token %q", core.ErrMalformedConfiguration, tok)
		}
		n, _ := strconv.Atoi(m[1])
		label, _ := core.ParseSubshellLabel(m[2][0])
		electrons, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: token %q: %v", core.ErrMalformedConfiguration, tok, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: token %q: shell must be at least 1", core.ErrMalformedConfiguration, tok)
		}
		if electrons > label.Capacity() {
			return nil, fmt.Errorf("%w: token %q: %d electrons exceed %s capacity %d",
				core.ErrMalformedConfiguration, tok, electrons, label, label.Capacity())
		}
		cfg = append(cfg, core.SubshellEntry{N: n, Label: label, Electrons: electrons})
	}
	return cfg, nil
}

// normalizeDigits converts superscript electron counts back to ASCII.
// Only digits that follow a subshell letter are touched, so a superscript
// shell number stays malformed.
func normalizeDigits(s string) string {
	return superscriptCountPattern.ReplaceAllStringFunc(s, func(m string) string {
		var b strings.Builder
		b.WriteByte(m[0])
		for _, r := range m[1:] {
			d, _ := fromSuperscript(r)
			b.WriteRune(d)
		}
		return b.String()
	})
}
