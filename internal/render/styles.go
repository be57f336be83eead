package render

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	directory lipgloss.Style
	cell      lipgloss.Style
	date      lipgloss.Style
	prompt    lipgloss.Style
	border    lipgloss.Style
	rule      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Italic(true),
		header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		directory: lipgloss.NewStyle().Faint(true).Padding(0, 1),
		cell:      lipgloss.NewStyle().Padding(0, 1),
		date:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		border:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		rule:      lipgloss.NewStyle().Faint(true),
	}
}
