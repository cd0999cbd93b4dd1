package koch

import (
	"fmt"
	"image/color"
)

// Color is the stroke color of a segment: three 8-bit channels plus alpha,
// not premultiplied.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// Black is the color of segments created without an explicit color.
var Black = Color{0, 0, 0, 255}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Float returns the channels scaled to [0, 1].
func (c Color) Float() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}
