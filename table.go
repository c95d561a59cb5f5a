package nbaheat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// A StatTable holds one row of named numeric statistics per player.
// Player names are unique and key the rows, column names key the
// columns. All transformations return fresh tables; a constructed
// table is never mutated.
type StatTable struct {
	Players []string
	Columns []string
	M       *mat.Dense // len(Players) x len(Columns)
}

// NewStatTable returns a zero-valued table for the given players and
// columns. Both slices are copied. NewStatTable panics if players or
// columns is empty; the loader rejects such inputs before tables are
// built.
func NewStatTable(players, columns []string) *StatTable {
	return &StatTable{
		Players: append([]string(nil), players...),
		Columns: append([]string(nil), columns...),
		M:       mat.NewDense(len(players), len(columns), nil),
	}
}

// Dims returns the number of player rows and statistic columns.
func (t *StatTable) Dims() (rows, cols int) {
	return t.M.Dims()
}

// At returns the cell value of row r, column c.
func (t *StatTable) At(r, c int) float64 {
	return t.M.At(r, c)
}

// Set sets the cell value of row r, column c. It is used while a table
// is being built.
func (t *StatTable) Set(r, c int, v float64) {
	t.M.Set(r, c, v)
}

func (t *StatTable) colIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column of the given name.
func (t *StatTable) HasColumn(name string) bool {
	return t.colIndex(name) >= 0
}

// Column returns a copy of the values of the named column.
func (t *StatTable) Column(name string) ([]float64, error) {
	c := t.colIndex(name)
	if c < 0 {
		return nil, &SchemaError{Column: name}
	}
	col := make([]float64, len(t.Players))
	mat.Col(col, c, t.M)
	return col, nil
}

// ColumnInterval returns the interval covered by the named column.
func (t *StatTable) ColumnInterval(name string) (Interval, error) {
	col, err := t.Column(name)
	if err != nil {
		return Interval{}, err
	}
	iv := unsetInterval()
	iv.Update(col...)
	return iv, nil
}

// Select returns a new table holding the given columns in the given
// order. Every requested column must exist in t.
func (t *StatTable) Select(columns []string) (*StatTable, error) {
	out := NewStatTable(t.Players, columns)
	for c, name := range columns {
		src := t.colIndex(name)
		if src < 0 {
			return nil, &SchemaError{Column: name}
		}
		for r := range t.Players {
			out.Set(r, c, t.At(r, src))
		}
	}
	return out, nil
}

// Arrange returns a new table with rows reordered to match players,
// which must name every row of t exactly once.
func (t *StatTable) Arrange(players []string) (*StatTable, error) {
	if len(players) != len(t.Players) {
		return nil, fmt.Errorf("arrange: got %d players, table has %d",
			len(players), len(t.Players))
	}
	rowOf := make(map[string]int, len(t.Players))
	for i, p := range t.Players {
		rowOf[p] = i
	}
	out := NewStatTable(players, t.Columns)
	seen := make(map[string]bool, len(players))
	for r, p := range players {
		src, ok := rowOf[p]
		if !ok {
			return nil, fmt.Errorf("arrange: unknown player %q", p)
		}
		if seen[p] {
			return nil, fmt.Errorf("arrange: duplicate player %q", p)
		}
		seen[p] = true
		out.M.SetRow(r, t.M.RawRowView(src))
	}
	return out, nil
}

// newLike returns a zero-valued table with the same players and
// columns as t.
func newLike(t *StatTable) *StatTable {
	return NewStatTable(t.Players, t.Columns)
}
