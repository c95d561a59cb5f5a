package nbaheat

// ConstantPolicy selects how Normalize treats a constant column, whose
// min-max rescaling would otherwise divide by zero.
type ConstantPolicy int

// String returns the name of p.
func (p ConstantPolicy) String() string {
	return []string{"zero", "fatal"}[int(p)]
}

const (
	// ConstantToZero maps every value of a constant column to 0.0.
	ConstantToZero ConstantPolicy = iota
	// ConstantFatal fails with a DegenerateColumnError.
	ConstantFatal
)

// Normalize rescales every column of t independently onto [0, 1]: the
// column minimum maps to 0, the column maximum to 1. Constant columns
// become all 0.0 rather than NaN. Row and column order are preserved.
func Normalize(t *StatTable) (*StatTable, error) {
	return NormalizeWith(t, ConstantToZero)
}

// NormalizeWith is Normalize with an explicit constant-column policy.
func NormalizeWith(t *StatTable, policy ConstantPolicy) (*StatTable, error) {
	out := newLike(t)
	rows, _ := t.Dims()
	for c, name := range t.Columns {
		iv := unsetInterval()
		for r := 0; r < rows; r++ {
			iv.Update(t.At(r, c))
		}
		if iv.Degenerate() {
			if policy == ConstantFatal {
				return nil, &DegenerateColumnError{
					Column: name,
					Value:  iv.Min,
					Rows:   rows,
				}
			}
			continue // cells of out are already 0
		}
		for r := 0; r < rows; r++ {
			out.Set(r, c, iv.Unit(t.At(r, c)))
		}
	}
	return out, nil
}
