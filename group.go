package nbaheat

// A GroupKind identifies one of the fixed statistic groups used for
// display grouping and color differentiation.
type GroupKind int

// String returns the name of g.
func (g GroupKind) String() string {
	return []string{"offense", "defense", "other"}[int(g)]
}

const (
	Offense GroupKind = iota
	Defense
	Other
	numGroups
)

// A GroupTable fixes the membership of statistic columns in groups,
// indexed by GroupKind. The order of the columns within a group is the
// rendering order.
type GroupTable [numGroups][]string

// A GroupAssignment maps every data column to exactly one group. It is
// built by AssignGroups and immutable afterwards.
type GroupAssignment struct {
	byColumn map[string]GroupKind
	members  [numGroups][]string
}

// AssignGroups partitions columns using the membership lists of table.
// It fails with an AmbiguousGroupError if the lists are not disjoint
// and with an UnassignedColumnError if a column belongs to no group.
// Table entries naming columns absent from the data are ignored.
func AssignGroups(columns []string, table GroupTable) (*GroupAssignment, error) {
	declared := make(map[string]GroupKind)
	for g := GroupKind(0); g < numGroups; g++ {
		for _, col := range table[g] {
			if prev, ok := declared[col]; ok {
				return nil, &AmbiguousGroupError{
					Column: col,
					Groups: []GroupKind{prev, g},
				}
			}
			declared[col] = g
		}
	}

	a := &GroupAssignment{byColumn: make(map[string]GroupKind, len(columns))}
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		g, ok := declared[col]
		if !ok {
			return nil, &UnassignedColumnError{Column: col}
		}
		a.byColumn[col] = g
		present[col] = true
	}
	for g := GroupKind(0); g < numGroups; g++ {
		for _, col := range table[g] {
			if present[col] {
				a.members[g] = append(a.members[g], col)
			}
		}
	}
	return a, nil
}

// GroupOf returns the group of the given column.
func (a *GroupAssignment) GroupOf(column string) (GroupKind, bool) {
	g, ok := a.byColumn[column]
	return g, ok
}

// Members returns the data columns assigned to group g in declared
// membership order. The returned slice must not be modified.
func (a *GroupAssignment) Members(g GroupKind) []string {
	return a.members[g]
}

// Len returns the number of assigned columns.
func (a *GroupAssignment) Len() int {
	return len(a.byColumn)
}
