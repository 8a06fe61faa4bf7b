package tui

import "github.com/balkashynov/pomo/internal/session"

// Color constants for pomo TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Accent elements, active borders
	ColorAccentBright = "#A78BFA" // Hover, highlights, focused field

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings, confirm prompts
)

// modeColor returns the accent color of a session mode
func modeColor(mode session.Mode) string {
	if c := mode.Color(); c != "" {
		return c
	}
	return ColorAccentMain
}
