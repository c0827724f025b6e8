package core

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit straight-alpha color.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent color used to clear overlay layers.
var Transparent = RGBA{}

// RGB returns an opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return c.colorful().Hex()
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ParseHex parses a "#rrggbb" string into an opaque color.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b RGBA, t float64) RGBA {
	t = ClampF(t, 0, 1)
	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return RGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// NRGBA converts the color for image and image/draw APIs.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to straight alpha.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
