package storefront

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	name       lipgloss.Style
	detail     lipgloss.Style
	spec       lipgloss.Style
	price      lipgloss.Style
	selected   lipgloss.Style
	unselected lipgloss.Style
	summary    lipgloss.Style
	empty      lipgloss.Style
	badge      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		spec:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		price:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		summary:    lipgloss.NewStyle().Bold(true).MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
