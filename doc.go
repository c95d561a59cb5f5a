// Package nbaheat prepares NBA player statistics for rendering as a
// categorical heatmap.
//
// The package is a single linear pipeline over a small delimited text
// table, one row per player:
//
//	Load -> Normalize -> AssignGroups -> Encode -> render
//
// Load reads the table and drops the non-numeric TEAM column.
// Normalize rescales every statistic column independently onto [0, 1].
// AssignGroups partitions the columns into the offense, defense and
// other groups. Encode offsets each group's values into a disjoint
// numeric band and derives the ColorStops that map each band to its
// own color gradient, so that every group renders with an independent
// ramp. The heatmap subpackage draws the result as a grid of colored
// tiles on a gonum/plot plot.
//
// Every stage is a pure function over its inputs: tables are never
// mutated after construction and renders may run concurrently without
// coordination. Any stage failure aborts the whole render with a typed
// error carrying the offending column and value.
package nbaheat
