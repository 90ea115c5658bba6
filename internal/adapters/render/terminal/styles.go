package terminal

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	symbol  lipgloss.Style
	detail  lipgloss.Style
	up      lipgloss.Style
	down    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	rule    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		symbol:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		up:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		down:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
