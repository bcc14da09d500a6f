// File: styles.go
// Title: REPL Styles
// Description: lipgloss colours and styles of the terminal REPL.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	OutputStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	RunningStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// RenderError styles a diagnostic line
func RenderError(msg string) string {
	return ErrorStyle.Render(msg)
}
