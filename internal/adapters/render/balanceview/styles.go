package balanceview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	bucketName lipgloss.Style
	amount     lipgloss.Style
	fundName   lipgloss.Style
	fundAmount lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		bucketName: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		amount:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fundName:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		fundAmount: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}
