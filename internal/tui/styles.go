package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Window status badges.
var (
	badgeVisibleStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeHiddenStyle    = lipgloss.NewStyle().Foreground(colorDim)
	badgeFocusedStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	badgeMinimizedStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

// Status line.
var (
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	savedStyle = lipgloss.NewStyle().Foreground(colorGreen)
)
