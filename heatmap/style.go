package heatmap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a heatmap plot is drawn.
type Style struct {
	// TileBorder separates neighbouring tiles.
	TileBorder draw.LineStyle

	// TitleSize is the font size of the plot title.
	TitleSize vg.Length

	// LabelRotation slants the column labels, in radians.
	LabelRotation float64
}

// DefaultStyle returns the style of the demo plots: thin white tile
// separators, a large title and slanted column labels.
func DefaultStyle() Style {
	s := Style{}
	s.TileBorder.Color = color.White
	s.TileBorder.Width = vg.Points(0.2)
	s.TitleSize = vg.Points(22)
	s.LabelRotation = math.Pi / 6
	return s
}

// Apply sets the plot-level parts of s on p: title size, zero axis
// padding so tiles touch the plot edge, and rotated, right-anchored
// column labels.
func (s Style) Apply(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = s.TitleSize
	p.X.Padding, p.Y.Padding = 0, 0
	p.X.Tick.Label.Rotation = s.LabelRotation
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
}
