package nbaheat

import "fmt"

// A ParseError reports a malformed input file: a missing header row, a
// statistic column holding a non-numeric value, or an unreadable table.
type ParseError struct {
	Name   string // file name or reader label
	Column string // offending column, if known
	Value  string // first offending value, if any
	Err    error  // underlying cause, if any
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("parse %s: column %q: non-numeric value %q",
			e.Name, e.Column, e.Value)
	case e.Err != nil:
		return fmt.Sprintf("parse %s: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("parse %s: malformed input", e.Name)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// A SchemaError reports a table whose shape does not match the
// expected one, e.g. a missing PLAYER or TEAM column or a duplicate
// player name.
type SchemaError struct {
	Column string
	Reason string // empty means the column is absent
}

func (e *SchemaError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("schema: missing column %q", e.Column)
	}
	return fmt.Sprintf("schema: column %q: %s", e.Column, e.Reason)
}

// An UnassignedColumnError reports a statistic column that appears in
// the data but in none of the groups of the group table.
type UnassignedColumnError struct {
	Column string
}

func (e *UnassignedColumnError) Error() string {
	return fmt.Sprintf("group table has no entry for column %q", e.Column)
}

// An AmbiguousGroupError reports a column listed in more than one
// group of a group table. The membership lists must be disjoint.
type AmbiguousGroupError struct {
	Column string
	Groups []GroupKind
}

func (e *AmbiguousGroupError) Error() string {
	return fmt.Sprintf("column %q appears in more than one group: %v",
		e.Column, e.Groups)
}

// A DegenerateColumnError reports a constant statistic column whose
// min-max rescaling would divide by zero.
type DegenerateColumnError struct {
	Column string
	Value  float64 // the constant value
	Rows   int
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("column %q is constant (%g over %d rows)",
		e.Column, e.Value, e.Rows)
}
