package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Terminal palette.
var (
	accent  = lipgloss.Color("#2196F3")
	success = lipgloss.Color("#06923E")
	warning = lipgloss.Color("#FFC107")
	danger  = lipgloss.Color("#DC2525")
	muted   = lipgloss.Color("#7f7f7f")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	okStyle      = lipgloss.NewStyle().Foreground(success)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(12)
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
)

func cellStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerCell
	}
	return bodyCell
}
