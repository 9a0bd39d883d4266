package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	cursor       lipgloss.Style
	user         lipgloss.Style
	bucketName   lipgloss.Style
	amount       lipgloss.Style
	fundName     lipgloss.Style
	formLabel    lipgloss.Style
	formValue    lipgloss.Style
	activityTime lipgloss.Style
	info         lipgloss.Style
	success      lipgloss.Style
	errorText    lipgloss.Style
	toastInfo    lipgloss.Style
	toastSuccess lipgloss.Style
	toastError   lipgloss.Style
	help         lipgloss.Style
	empty        lipgloss.Style
	section      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cursor:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		user:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		bucketName:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		amount:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fundName:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		formLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		formValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		activityTime: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		info:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		toastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		toastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		toastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		help:         lipgloss.NewStyle().Faint(true),
		empty:        lipgloss.NewStyle().Faint(true),
		section:      lipgloss.NewStyle().MarginTop(1),
	}
}
