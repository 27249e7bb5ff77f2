package viz

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	bad   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value: lipgloss.NewStyle().Foreground(t.Text),
		ok:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		warn:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		bad:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}
