package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Title    lipgloss.Color
	Normal   lipgloss.Color
	Failed   lipgloss.Color
	Source   lipgloss.Color
	Selected lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
}

var themes = []Theme{
	{
		Name:     "Kiro Purple",
		Title:    lipgloss.Color("205"),
		Normal:   lipgloss.Color("252"),
		Failed:   lipgloss.Color("196"),
		Source:   lipgloss.Color("241"),
		Selected: lipgloss.Color("170"),
		Accent:   lipgloss.Color("205"),
		Muted:    lipgloss.Color("241"),
	},
	{
		Name:     "Everforest",
		Title:    lipgloss.Color("#A7C080"),
		Normal:   lipgloss.Color("#D3C6AA"),
		Failed:   lipgloss.Color("#E67E80"),
		Source:   lipgloss.Color("#859289"),
		Selected: lipgloss.Color("#83C092"),
		Accent:   lipgloss.Color("#7FBBB3"),
		Muted:    lipgloss.Color("#7A8478"),
	},
	{
		Name:     "Nord",
		Title:    lipgloss.Color("#88c0d0"),
		Normal:   lipgloss.Color("#eceff4"),
		Failed:   lipgloss.Color("#bf616a"),
		Source:   lipgloss.Color("#4c566a"),
		Selected: lipgloss.Color("#a3be8c"),
		Accent:   lipgloss.Color("#81a1c1"),
		Muted:    lipgloss.Color("#4c566a"),
	},
}

func (t Theme) applyStyles() {
	titleStyle = lipgloss.NewStyle().
		Foreground(t.Title).
		Bold(true).
		MarginLeft(2)

	normalStyle = lipgloss.NewStyle().
		Foreground(t.Normal)

	failedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Failed)

	sourceStyle = lipgloss.NewStyle().
		Foreground(t.Source)

	selectedItemStyle = lipgloss.NewStyle().
		Foreground(t.Selected).
		Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inputHintStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	previewStyle = lipgloss.NewStyle().
		Foreground(t.Selected).
		Bold(true)
}
