package nbaheat

import "math"

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// yet determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include all x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsSet reports whether both edges of i are determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Degenerate reports whether i has collapsed to a single point.
func (i Interval) Degenerate() bool {
	return i.Min == i.Max
}

// Width returns the length of i.
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Unit maps the interval [i.Min, i.Max] to [0, 1].
// If i is unset or degenerate Unit returns NaN.
func (i Interval) Unit(x float64) float64 {
	if !i.IsSet() || i.Degenerate() {
		return math.NaN()
	}
	return (x - i.Min) / (i.Max - i.Min)
}

// Equal reports whether i and j agree, treating NaN edges as equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}
