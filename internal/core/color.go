package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Pastel and bright tones used by Healing Bird.
	ColorPink     // light pink
	ColorPeach    // peach puff
	ColorApricot  // pale apricot
	ColorLavender // lavender
	ColorHoneydew // honeydew
	ColorSunflower
	ColorCoral
	ColorTeal
	ColorMint
	ColorRose
	ColorGold
	ColorDimGray
)
