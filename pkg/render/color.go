// pkg/render/color.go
package render

import "image/color"

// BoardColors holds the colors of the static board background.
type BoardColors struct {
	BackgroundColor color.RGBA
	FrontierColor   color.RGBA
	TrenchColor     color.RGBA
	DirtColor       color.RGBA
	DefenseColor    color.RGBA
	GridLineColor   color.RGBA
	StrokeWidth     float32
}

// EntityColors holds the colors used on top of units and installations.
type EntityColors struct {
	HealthBarColor  color.RGBA
	HealthBackColor color.RGBA
	TextLightColor  color.RGBA
	TextDarkColor   color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor mixes a color halfway towards white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
