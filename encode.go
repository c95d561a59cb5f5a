package nbaheat

import (
	"fmt"
	"image/color"

	"github.com/hoopstats/nbaheat/gradient"
)

// A ColorStop describes how one group's band of encoded values maps to
// a color gradient. Band covers the actually observed encoded values
// of the group, not the theoretical band limits, so the ramp is
// calibrated to the group's empirical spread.
type ColorStop struct {
	Group GroupKind
	Band  Interval
	Ramp  gradient.Gradient
}

// ColorStops drives a renderer's continuous color mapping across the
// concatenated group bands.
type ColorStops []ColorStop

// At resolves an encoded cell value to its color. The second return is
// false if no band covers z. A degenerate band maps every value to the
// start of its ramp.
func (cs ColorStops) At(z float64) (color.Color, bool) {
	for _, s := range cs {
		if !s.Band.Contains(z) {
			continue
		}
		t := 0.0
		if !s.Band.Degenerate() {
			t = (z - s.Band.Min) / s.Band.Width()
		}
		return s.Ramp.At(t), true
	}
	return nil, false
}

// An Encoder offsets each group's normalized values into a disjoint
// numeric band so that a single continuous color scale can emulate an
// independent gradient per group.
type Encoder struct {
	bandWidth float64
	ramps     GroupRamps
}

// NewEncoder returns an Encoder placing the k-th populated group at
// offset k*bandWidth. The band width must exceed 1, the largest
// possible spread of a normalized column, so that bands never overlap.
func NewEncoder(bandWidth float64, ramps GroupRamps) (*Encoder, error) {
	if !(bandWidth > 1) { // also rejects NaN
		return nil, fmt.Errorf("encoder: band width %g must exceed 1", bandWidth)
	}
	return &Encoder{bandWidth: bandWidth, ramps: ramps}, nil
}

// Encode returns a copy of norm with every cell offset into its
// group's band, together with the color stops covering the observed
// band ranges. Groups without any assigned column occupy no band.
// Every column of norm must be covered by asg.
func (e *Encoder) Encode(norm *StatTable, asg *GroupAssignment) (*StatTable, ColorStops, error) {
	// Band index of each populated group, in declared group order.
	var rank [numGroups]int
	k := 0
	for g := GroupKind(0); g < numGroups; g++ {
		rank[g] = k
		if len(asg.Members(g)) > 0 {
			k++
		}
	}

	enc := newLike(norm)
	var bands [numGroups]Interval
	for g := range bands {
		bands[g] = unsetInterval()
	}

	rows, _ := norm.Dims()
	for c, name := range norm.Columns {
		g, ok := asg.GroupOf(name)
		if !ok {
			return nil, nil, &UnassignedColumnError{Column: name}
		}
		offset := float64(rank[g]) * e.bandWidth
		for r := 0; r < rows; r++ {
			v := norm.At(r, c) + offset
			enc.Set(r, c, v)
			bands[g].Update(v)
		}
	}

	stops := make(ColorStops, 0, numGroups)
	for g := GroupKind(0); g < numGroups; g++ {
		if !bands[g].IsSet() {
			continue
		}
		stops = append(stops, ColorStop{Group: g, Band: bands[g], Ramp: e.ramps[g]})
	}
	return enc, stops, nil
}
