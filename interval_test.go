package nbaheat

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalUnitTests = []struct {
	iv   Interval
	x    float64
	want float64
}{
	{Interval{0, 10}, 0, 0},
	{Interval{0, 10}, 5, 0.5},
	{Interval{0, 10}, 10, 1},
	{Interval{1, 5}, 3, 0.5},
	{Interval{-10, 10}, 0, 0.5},
	{Interval{2, 2}, 2, nan},
	{Interval{nan, nan}, 1, nan},
}

func TestIntervalUnit(t *testing.T) {
	for i, tc := range intervalUnitTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.iv.Unit(tc.x)
			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("%v unit %v = %v, want NaN", tc.iv, tc.x, got)
				}
				return
			}
			if got != tc.want {
				t.Errorf("%v unit %v = %v, want %v", tc.iv, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{2, 4}
	for _, x := range []float64{2, 3, 4} {
		if !iv.Contains(x) {
			t.Errorf("%v should contain %v", iv, x)
		}
	}
	for _, x := range []float64{1.999, 4.001, nan} {
		if iv.Contains(x) {
			t.Errorf("%v should not contain %v", iv, x)
		}
	}
}

func TestIntervalDegenerate(t *testing.T) {
	if !(Interval{3, 3}).Degenerate() {
		t.Error("[3,3] should be degenerate")
	}
	if (Interval{3, 4}).Degenerate() {
		t.Error("[3,4] should not be degenerate")
	}
}
