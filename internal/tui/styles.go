package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/adhanclock/internal/config"
)

// Styles holds the lipgloss styles derived from the configured palette.
type Styles struct {
	Screen  lipgloss.Style
	Header  lipgloss.Style
	Text    lipgloss.Style
	Clock   lipgloss.Style
	Accent  lipgloss.Style
	Divider lipgloss.Style
	NextRow lipgloss.Style
	Status  lipgloss.Style
	bg      lipgloss.Color
}

func NewStyles(p config.Palette) Styles {
	bg := lipgloss.Color(p.Background)
	text := lipgloss.Color(p.Text)
	accent := lipgloss.Color(p.Accent)
	divider := lipgloss.Color(p.Divider)

	base := lipgloss.NewStyle().Background(bg).Foreground(text)

	return Styles{
		Screen:  lipgloss.NewStyle().Background(bg),
		Header:  base.Bold(true),
		Text:    base,
		Clock:   base.Bold(true),
		Accent:  base.Foreground(accent).Bold(true),
		Divider: base.Foreground(divider),
		NextRow: base.Foreground(accent).Bold(true),
		Status:  base.Foreground(text),
		bg:      bg,
	}
}
