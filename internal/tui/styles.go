package tui

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle   = lipgloss.NewStyle().Padding(1, 2)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	escapedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	capturedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

func outcomeStyle(name string) lipgloss.Style {
	switch name {
	case "escaped":
		return escapedStyle
	case "captured":
		return capturedStyle
	}
	return criticalStyle
}
