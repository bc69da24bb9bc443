package timer

import (
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Notice    lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1F2937")
	hint := lipgloss.Color("#6B7280")

	if dark {
		text = lipgloss.Color("#F9FAFB")
		hint = lipgloss.Color("#9CA3AF")
	}

	return styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}
}
