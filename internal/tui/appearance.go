package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styleSet struct {
	Title    lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Frog     lipgloss.Style
	Done     lipgloss.Style
	Timer    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// newStyles degrades gracefully on dumb terminals: below ANSI color
// support, everything renders unstyled.
func newStyles() styleSet {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return styleSet{}
	}
	return styleSet{
		Title:    lipgloss.NewStyle().Bold(true),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"}).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"}),
		Frog:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"}).Strikethrough(true),
		Timer:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"}),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"}),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}),
	}
}
