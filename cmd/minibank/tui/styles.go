package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Same palette as the output package, so one-shot commands and the
	// session look like the same program.
	colorPrimary = lipgloss.Color("#0EA5E9")
	colorSuccess = lipgloss.Color("#22C55E")
	colorDanger  = lipgloss.Color("#DC2626")
	colorMuted   = lipgloss.Color("#71717A")
	colorText    = lipgloss.Color("#F3F4F6")
	colorBorder  = lipgloss.Color("#4B5563")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				PaddingLeft(2)

	unselectedItemStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(4)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorDanger).
				Padding(0, 3).
				Bold(true)

	inactiveButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(lipgloss.Color("#1F2937")).
				Padding(0, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().Foreground(colorPrimary)
)

func helpKey(key, description string) string {
	return helpKeyStyle.Render(key) + " " + mutedStyle.Render(description)
}

func helpLine(keys ...string) string {
	return helpStyle.Render(strings.Join(keys, " • "))
}
