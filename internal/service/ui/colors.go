package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors only, so the palette follows the user's terminal theme.
var (
	// TitleStyle is used for section titles in help output and the TUI header.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle dims secondary text such as descriptions and hints.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// CommandStyle marks the submitted line in verbose history.
	CommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	EntryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)
)
