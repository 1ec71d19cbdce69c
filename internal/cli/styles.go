package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	transparentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	opaqueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
)
