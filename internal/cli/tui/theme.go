package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth       = 100
	defaultTableHeight = 15
	// header, search, filter line, metrics, alert, status, help
	chromeHeight = 9
)

var (
	colorControlBg  = lipgloss.Color("238")
	colorSelectedBg = lipgloss.Color("166")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	styleFilters = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleAlert   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleModal   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func tableColumns(width int) []table.Column {
	name := width - 70
	if name < 16 {
		name = 16
	}
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: name},
		{Title: "SKU", Width: 16},
		{Title: "Category", Width: 12},
		{Title: "Type", Width: 12},
		{Title: "Stock", Width: 12},
		{Title: "Status", Width: 12},
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Background(colorSelectedBg).Bold(true)
	return s
}
