package pendulum

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Predefined colors.
var (
	ColorWhite = RGB{255, 255, 255}
	ColorBlack = RGB{0, 0, 0}
)

// NewRGB builds a color from integer channels. Channels outside [0, 255]
// are rejected rather than clamped.
func NewRGB(r, g, b int) (RGB, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return RGB{}, errors.Errorf("color component %d out of range [0, 255]", c)
		}
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

// RGBA implements color.Color. The alpha channel is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// NRGBA converts the color to a color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// lerpRGB linearly interpolates each channel and rounds to the nearest
// integer. t is expected in [0, 1].
func lerpRGB(from, to RGB, t float64) RGB {
	mix := func(a, b uint8) uint8 {
		v := math.Round((1-t)*float64(a) + t*float64(b))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return RGB{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B)}
}

// Vec2 is a 2D point in world space.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range.
// Used by Policy to describe the window a random parameter is drawn from.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// validate checks that the range is well formed. name is used in the
// error message.
func (r Range) validate(name string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return errors.Errorf("%s: range contains NaN", name)
	}
	if r.Min > r.Max {
		return errors.Errorf("%s: min %v greater than max %v", name, r.Min, r.Max)
	}
	return nil
}

// Segment is one stroke emitted by a node: a straight line from the node's
// previous position to its current one.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  RGB
}
