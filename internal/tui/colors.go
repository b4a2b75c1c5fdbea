package tui

// Color constants for the quant widget theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText  = "#E6EAF2" // User input
	ColorPlaceholder  = "#B1B8C7" // Subtle purple-tinted grey
	ColorDisabledText = "#6D7383" // Idle indicator
	ColorHelpText     = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Container border while tracking
	ColorAccentBright = "#A78BFA" // Cursor, brightest pulse step
)

// pulseColors is the indicator gradient, dimmest first
var pulseColors = []string{
	"#4C1D95",
	"#6D28D9",
	ColorAccentMain,
	"#8B5CF6",
	ColorAccentBright,
}
