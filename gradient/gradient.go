// Package gradient builds the two-color ramps that fill heatmap tiles.
//
// A ramp blends between its start and end color in the HCL color space
// which keeps the perceived lightness progression even. Light builds
// the sequential "almost white into a base color" ramps the demo plots
// use.
package gradient

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// A Gradient linearly blends between a start and an end color.
type Gradient struct {
	Start, End colorful.Color
}

// New returns the gradient from start to end.
func New(start, end colorful.Color) Gradient {
	return Gradient{Start: start, End: end}
}

// lightStart is the near-white origin of all Light ramps.
var lightStart = colorful.Color{R: 0.949, G: 0.949, B: 0.961}

// Light returns a gradient fading from near-white into the given hex
// color, a light sequential palette.
func Light(hex string) (Gradient, error) {
	base, err := colorful.Hex(hex)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{Start: lightStart, End: base}, nil
}

// MustLight is like Light but panics on a malformed hex color. It
// simplifies static palette tables.
func MustLight(hex string) Gradient {
	g, err := Light(hex)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the color at position t. Values outside [0, 1] and NaN
// are clamped to the nearest edge.
func (g Gradient) At(t float64) color.Color {
	if t < 0 || math.IsNaN(t) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.Start.BlendHcl(g.End, t).Clamped()
}

// Palette returns the gradient discretized into n colors, suitable for
// plotter.NewHeatMap.
func (g Gradient) Palette(n int) palette.Palette {
	cols := make(colors, n)
	for i := range cols {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cols[i] = g.At(t)
	}
	return cols
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
