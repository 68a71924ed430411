package epd

import (
	"image/color"

	sparkline "github.com/dnldd/tickframe/chart"
)

// Palette represents the named colors of the dashboard. Color semantics live
// here so the drawing code never deals in bare RGB tuples.
type Palette struct {
	// Background is the frame background fill.
	Background color.Color
	// TextPrimary is the main text color.
	TextPrimary color.Color
	// TextDim is the secondary text color.
	TextDim color.Color
	// Grid is the color of rules, dividers and chart labels.
	Grid color.Color
	// Up is the bullish accent color.
	Up color.Color
	// Down is the bearish accent color, also used for error text.
	Down color.Color
}

// DefaultPalette returns the stock e-paper palette.
func DefaultPalette() Palette {
	return Palette{
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextPrimary: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		TextDim:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Grid:        color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Up:          color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Down:        color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}
}

// resolve maps a chart primitive color to its palette color.
func (p Palette) resolve(c sparkline.Color) color.Color {
	switch c {
	case sparkline.ColorUp:
		return p.Up
	case sparkline.ColorDown:
		return p.Down
	default:
		return p.Grid
	}
}
