package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the terminal front-end.
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Panel        lipgloss.Style
	ErrorPanel   lipgloss.Style
	ErrorTitle   lipgloss.Style
	Issue        lipgloss.Style
	Recommend    lipgloss.Style
	Button       lipgloss.Style
	ButtonOff    lipgloss.Style
	Footer       lipgloss.Style
	Spinner      lipgloss.Style
	SectionTitle lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		ErrorPanel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("160")).Foreground(lipgloss.Color("210")).Padding(0, 1),
		ErrorTitle:   lipgloss.NewStyle().Bold(true),
		Issue:        lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Recommend:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Button:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 2),
		ButtonOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236")).Padding(0, 2),
		Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
	}
}
