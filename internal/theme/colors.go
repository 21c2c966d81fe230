package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Key binding colors
const (
	ColorCapture  Color = "226" // Yellow - waiting for a key press
	ColorGamepad  Color = "141" // Purple - gamepad buttons
	ColorKeyboard Color = "86"  // Cyan - keyboard keys
	ColorSelected Color = "205" // Pink - selected key
	ColorUnbound  Color = "8"   // Gray - event without keys
)
