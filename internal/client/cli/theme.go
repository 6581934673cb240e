package cli

import "github.com/charmbracelet/lipgloss"

// Colors adapt to dark and light terminals. Light values use ANSI 0-15 for
// accents and 256-color grays; dark values are 256-color codes.
var (
	ColorTextDim = ac("242", "243")
	ColorAccent  = ac("4", "75")
	ColorError   = ac("1", "196")
	ColorSuccess = ac("2", "114")
	ColorWarn    = ac("3", "208")
	ColorBorder  = ac("250", "60")
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// barGlyph fills the distribution bars and the daily trend cells.
const barGlyph = "█"
