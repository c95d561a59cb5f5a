// Package heatmap draws a statistic table as a grid of colored tiles
// on a gonum/plot plot.
//
// Map renders an encoded table with one independent color ramp per
// statistic group, resolved through the table's ColorStops. Grid
// adapts a table to plotter.GridXYZ for use with plotter.NewHeatMap
// when a single ramp is enough.
package heatmap

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hoopstats/nbaheat"
)

// A Map draws one colored tile per cell of an encoded statistic table.
// Row r is centered at y=r and column c at x=c; use plot.NominalX and
// plot.NominalY to label the axes. Cells whose value no color stop
// covers are left blank.
type Map struct {
	Table *nbaheat.StatTable
	Stops nbaheat.ColorStops

	// Border is stroked around every tile to separate neighbours.
	Border draw.LineStyle
}

// NewMap returns a Map for the given table with the default style.
func NewMap(table *nbaheat.StatTable, stops nbaheat.ColorStops) *Map {
	return &Map{
		Table:  table,
		Stops:  stops,
		Border: DefaultStyle().TileBorder,
	}
}

// Plot implements plot.Plotter.
func (m *Map) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	rows, cols := m.Table.Dims()
	stroke := m.Border.Color != nil && m.Border.Width > 0
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			fill, ok := m.Stops.At(m.Table.At(r, col))
			if !ok {
				continue
			}
			rect := vg.Rectangle{
				Min: vg.Point{X: trX(float64(col) - 0.5), Y: trY(float64(r) - 0.5)},
				Max: vg.Point{X: trX(float64(col) + 0.5), Y: trY(float64(r) + 0.5)},
			}
			c.SetColor(fill)
			c.Fill(rect.Path())
			if stroke {
				c.SetColor(m.Border.Color)
				c.SetLineWidth(m.Border.Width)
				c.SetLineDash(m.Border.Dashes, m.Border.DashOffs)
				c.Stroke(rect.Path())
			}
		}
	}
}

// DataRange implements plot.DataRanger. The range leaves half a cell
// of margin around the outermost tile centers.
func (m *Map) DataRange() (xmin, xmax, ymin, ymax float64) {
	rows, cols := m.Table.Dims()
	return -0.5, float64(cols) - 0.5, -0.5, float64(rows) - 0.5
}

// Grid adapts a StatTable to the plotter.GridXYZ interface used by
// plotter.NewHeatMap.
type Grid struct {
	Table *nbaheat.StatTable
}

// Dims returns the grid dimensions, columns first as GridXYZ demands.
func (g Grid) Dims() (c, r int) {
	rows, cols := g.Table.Dims()
	return cols, rows
}

// Z returns the cell value of column c, row r.
func (g Grid) Z(c, r int) float64 { return g.Table.At(r, c) }

// X returns the coordinate of column c.
func (g Grid) X(c int) float64 { return float64(c) }

// Y returns the coordinate of row r.
func (g Grid) Y(r int) float64 { return float64(r) }
