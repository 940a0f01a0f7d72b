package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto tty", ModeAuto, true, ModeText},
		{"auto pipe", ModeAuto, false, ModeMarkdown},
		{"empty means auto", "", false, ModeMarkdown},
		{"explicit text", ModeText, false, ModeText},
		{"explicit json", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range Modes {
		assert.True(t, m.Valid(), string(m))
	}
	assert.True(t, Mode("").Valid())
	assert.False(t, Mode("yaml").Valid())
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestMarkdownOutput(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(1, "Oxygen")
	r.KeyValue("Protons", "8")

	got := out.String()
	assert.Contains(t, got, "# Oxygen\n")
	assert.Contains(t, got, "- **Protons:** 8\n")
	assert.NotContains(t, got, "\x1b[")
}

func TestTextOutput_NoANSIWithoutTTY(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText, false)
	r.Header(1, "Oxygen")
	r.Header(2, "Shells")
	r.KeyValue("Protons", "8")

	got := out.String()
	assert.Contains(t, got, "Oxygen")
	assert.Contains(t, got, "Protons:")
	assert.NotContains(t, got, "\x1b[")
}

func TestWarning(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)
	r.Warning("no reference data")
	assert.Empty(t, out.String())
	assert.Equal(t, "warning: no reference data\n", errOut.String())
}

func TestError(t *testing.T) {
	for _, mode := range []Mode{ModeText, ModeMarkdown} {
		t.Run(string(mode), func(t *testing.T) {
			r, out, errOut := newTestRenderer(mode, false)
			r.Error(errors.New("atomic number 0 out of range"))
			assert.Empty(t, out.String())
			assert.Equal(t, "Error: atomic number 0 out of range\n", errOut.String())
		})
	}
}

func TestJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"protons": 8}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 8, decoded["protons"])
}

func TestTable(t *testing.T) {
	header := []string{"Z", "Symbol"}
	rows := [][]string{{"1", "H"}, {"2", "He"}}

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText, false)
		r.Table(header, rows)
		got := out.String()
		assert.Contains(t, got, "SYMBOL")
		assert.Contains(t, got, "He")
		assert.Contains(t, got, "┌")
	})

	t.Run("markdown", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeMarkdown, false)
		r.Table(header, rows)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, strings.ToLower(lines[0]), "symbol")
		assert.Contains(t, lines[1], "---")
		assert.Contains(t, lines[3], "He")
		assert.NotContains(t, out.String(), "┌")
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Shells", FormatHeader(2, "Shells"))
	assert.Equal(t, "# Shells", FormatHeader(0, "Shells"))
	assert.Equal(t, "- **Neutrons:** 8", FormatKeyValue("Neutrons", "8"))
}
