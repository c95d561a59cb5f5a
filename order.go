package nbaheat

import "sort"

// OrderRows returns the player names of t sorted by the values of the
// named column. The sort is stable: ties keep their original row
// order. An unknown column is a SchemaError.
func OrderRows(t *StatTable, byColumn string, ascending bool) ([]string, error) {
	col, err := t.Column(byColumn)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(col))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		if ascending {
			return col[idx[i]] < col[idx[j]]
		}
		return col[idx[i]] > col[idx[j]]
	})
	players := make([]string, len(idx))
	for i, r := range idx {
		players[i] = t.Players[r]
	}
	return players, nil
}

// OrderColumns returns all assigned columns flattened in group order,
// offense first, then defense, then other, each in declared membership
// order.
func OrderColumns(asg *GroupAssignment) []string {
	cols := make([]string, 0, asg.Len())
	for g := GroupKind(0); g < numGroups; g++ {
		cols = append(cols, asg.Members(g)...)
	}
	return cols
}
