package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Accent  lipgloss.Style
}

// newStyles builds styles bound to w. Without a TTY the color profile is
// forced to ASCII so no escape codes are emitted.
func newStyles(w io.Writer, isTTY bool) *Styles {
	var r *lipgloss.Renderer
	if isTTY {
		r = lipgloss.NewRenderer(w)
	} else {
		r = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}

	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Header2: r.NewStyle().Bold(true).Foreground(lipgloss.Color("105")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("243")),
		Key:     r.NewStyle().Foreground(lipgloss.Color("246")).Width(12),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Accent:  r.NewStyle().Foreground(lipgloss.Color("175")),
	}
}
