package nbaheat

import (
	"errors"
	"math"
	"testing"
)

// mkTable builds a table from row-major cell values.
func mkTable(t *testing.T, players, columns []string, cells []float64) *StatTable {
	t.Helper()
	if len(cells) != len(players)*len(columns) {
		t.Fatalf("mkTable: %d cells for %dx%d table",
			len(cells), len(players), len(columns))
	}
	tab := NewStatTable(players, columns)
	for r := range players {
		for c := range columns {
			tab.Set(r, c, cells[r*len(columns)+c])
		}
	}
	return tab
}

func equal64(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestNormalizeRescalesColumns(t *testing.T) {
	tab := mkTable(t,
		[]string{"p1", "p2", "p3"},
		[]string{"A", "B"},
		[]float64{
			1, 30,
			5, 10,
			10, 20,
		})
	norm, err := Normalize(tab)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	wantA := []float64{0, 4.0 / 9.0, 1}
	wantB := []float64{1, 0, 0.5}
	for r := range wantA {
		if got := norm.At(r, 0); !equal64(got, wantA[r]) {
			t.Errorf("A[%d] = %v, want %v", r, got, wantA[r])
		}
		if got := norm.At(r, 1); !equal64(got, wantB[r]) {
			t.Errorf("B[%d] = %v, want %v", r, got, wantB[r])
		}
	}
}

func TestNormalizeMinMaxProperty(t *testing.T) {
	tab := mkTable(t,
		[]string{"p1", "p2", "p3", "p4"},
		[]string{"A", "B", "C"},
		[]float64{
			3, -7, 0.2,
			9, 2, 0.9,
			1, 0, 0.1,
			4, 5, 0.7,
		})
	norm, err := Normalize(tab)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	rows, cols := norm.Dims()
	for c := 0; c < cols; c++ {
		iv := unsetInterval()
		for r := 0; r < rows; r++ {
			v := norm.At(r, c)
			if v < 0 || v > 1 {
				t.Errorf("column %d row %d: %v outside [0,1]", c, r, v)
			}
			iv.Update(v)
		}
		if iv.Min != 0 || iv.Max != 1 {
			t.Errorf("column %d spans [%v,%v], want [0,1]", c, iv.Min, iv.Max)
		}
	}
}

func TestNormalizeConstantToZero(t *testing.T) {
	tab := mkTable(t,
		[]string{"p1", "p2", "p3"},
		[]string{"A", "B"},
		[]float64{
			1, 7,
			5, 7,
			10, 7,
		})
	norm, err := Normalize(tab)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for r := 0; r < 3; r++ {
		if got := norm.At(r, 1); got != 0 {
			t.Errorf("constant column row %d = %v, want 0", r, got)
		}
		if math.IsNaN(norm.At(r, 1)) {
			t.Errorf("constant column row %d is NaN", r)
		}
	}
}

func TestNormalizeConstantFatal(t *testing.T) {
	tab := mkTable(t,
		[]string{"p1", "p2"},
		[]string{"A", "B"},
		[]float64{
			1, 7,
			5, 7,
		})
	_, err := NormalizeWith(tab, ConstantFatal)
	var dce *DegenerateColumnError
	if !errors.As(err, &dce) {
		t.Fatalf("NormalizeWith(ConstantFatal) = %v, want DegenerateColumnError", err)
	}
	if dce.Column != "B" || dce.Value != 7 || dce.Rows != 2 {
		t.Errorf("got %+v, want column B, value 7, 2 rows", dce)
	}
}

func TestNormalizePreservesOrderAndInput(t *testing.T) {
	players := []string{"p2", "p1"}
	columns := []string{"B", "A"}
	tab := mkTable(t, players, columns, []float64{
		1, 4,
		3, 8,
	})
	norm, err := Normalize(tab)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i := range players {
		if norm.Players[i] != players[i] {
			t.Errorf("player order changed: %v", norm.Players)
		}
	}
	for i := range columns {
		if norm.Columns[i] != columns[i] {
			t.Errorf("column order changed: %v", norm.Columns)
		}
	}
	if tab.At(0, 0) != 1 || tab.At(1, 1) != 8 {
		t.Error("Normalize mutated its input")
	}
}

func TestNormalizeIdempotentOnUnitColumn(t *testing.T) {
	tab := mkTable(t,
		[]string{"p1", "p2", "p3"},
		[]string{"A"},
		[]float64{0, 0.25, 1})
	norm, err := Normalize(tab)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for r := 0; r < 3; r++ {
		if got, want := norm.At(r, 0), tab.At(r, 0); !equal64(got, want) {
			t.Errorf("row %d = %v, want %v", r, got, want)
		}
	}
}
