package core

// Color represents a foreground color for a screen cell.
// Values map onto the classic ANSI palette for terminal compatibility.
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
	ColorGray
)

// ansiSeqs maps colors to their SGR escape sequences for the plain
// terminal renderer. The Bubble Tea frontend styles cells through
// lipgloss instead and never touches these.
var ansiSeqs = map[Color]string{
	ColorDefault:       "\x1b[0m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightRed:     "\x1b[91m",
	ColorBrightGreen:   "\x1b[92m",
	ColorBrightYellow:  "\x1b[93m",
	ColorBrightBlue:    "\x1b[94m",
	ColorBrightMagenta: "\x1b[95m",
	ColorBrightCyan:    "\x1b[96m",
	ColorBrightWhite:   "\x1b[97m",
	ColorGray:          "\x1b[38;5;245m",
}

// ANSI returns the SGR escape sequence that selects this color.
func (c Color) ANSI() string {
	if seq, ok := ansiSeqs[c]; ok {
		return seq
	}
	return ansiSeqs[ColorDefault]
}
