package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Binding table styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	EventLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(16)

	SelectedEventLabelStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true).
				Width(16)

	GamepadKeyStyle = lipgloss.NewStyle().
			Foreground(ColorGamepad)

	KeyboardKeyStyle = lipgloss.NewStyle().
				Foreground(ColorKeyboard)

	SelectedKeyStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true).
				Underline(true)

	UnboundStyle = lipgloss.NewStyle().
			Foreground(ColorUnbound).
			Italic(true)
)

// Status line styles
var (
	CaptureStyle = lipgloss.NewStyle().
			Foreground(ColorCapture).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
