package tui

// Color constants for the giglog TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, accent elements, active borders
	ColorAccentBright = "#A78BFA" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Gateway failures
	ColorSuccess = "#22C55E" // Completed sessions
	ColorWarning = "#F59E0B" // Paused sessions
)
