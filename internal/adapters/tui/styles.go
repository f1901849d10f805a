package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hrdesk/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Teal).
			Foreground(style.Mist)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Ink).
			Bold(true)

	queryStyle = lipgloss.NewStyle().
			Foreground(style.Teal)

	rowStyle = lipgloss.NewStyle().
			Foreground(style.Ink)

	cursorStyle = lipgloss.NewStyle().
			Foreground(style.Teal).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	successStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
