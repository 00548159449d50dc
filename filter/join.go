package filter

import "fmt"

// Join describes one JOIN required to evaluate a filter condition.
// Two joins are considered duplicates when they target the same table,
// regardless of their ON clause; deduplication keeps the first occurrence.
type Join struct {
	Table  string
	Type   string // "JOIN", "LEFT JOIN", "INNER JOIN"
	On     string
	Origin string // filter kind that produced the join, for debugging
}

// SQL renders the join clause.
func (j Join) SQL() string {
	typ := j.Type
	if typ == "" {
		typ = "JOIN"
	}
	if j.On == "" {
		return fmt.Sprintf("%s %s", typ, j.Table)
	}
	return fmt.Sprintf("%s %s ON %s", typ, j.Table, j.On)
}
