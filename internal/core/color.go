package core

// Color is a foreground color for a screen cell, mapped to ANSI codes by the
// terminal layer.
type Color uint8

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
	ColorGray
)

// ParseColor maps a config name to a Color. Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_green":
		return ColorBrightGreen
	case "bright_yellow":
		return ColorBrightYellow
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
