package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Menu theme colors.
var (
	ColorWhite        = Color{1, 1, 1, 1}
	ColorPanelBg      = Color{0.12, 0.12, 0.14, 0.96}
	ColorPanelBorder  = Color{0.45, 0.45, 0.5, 1}
	ColorRowHighlight = Color{0.2, 0.45, 0.75, 1}
	ColorText         = Color{0.92, 0.92, 0.92, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}
