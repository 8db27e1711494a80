package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ColorMode is the color depth emitted by the ANSI backend
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ParseColorMode resolves a flag value, "auto" defers to DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// xterm256 is the palette searched when an RGB color must be approximated
var xterm256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// paletteIndex returns the 256-color index for c
func paletteIndex(c tcell.Color) int {
	if c.IsRGB() {
		c = tcell.FindColor(c, xterm256)
	}
	return int(c - tcell.ColorValid)
}
