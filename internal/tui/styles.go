package tui

import "github.com/charmbracelet/lipgloss"

var (
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	inputStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	typedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")).Faint(true)
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24")).Bold(true)
	overlayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	failStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	clearStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	readingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Faint(true)
)
