package filter

// Option is one selectable value of a filter, prepared for facet rendering.
// It is derived from a filter's value and never participates in query
// compilation.
type Option struct {
	Label  string `json:"label"`
	URL    string `json:"url,omitempty"`
	Value  string `json:"value"`
	Count  int    `json:"count,omitempty"`
	Sort   int    `json:"sort,omitempty"`
	Active bool   `json:"active,omitempty"`
	Kind   Kind   `json:"type"`
}

// OptionRow is the raw facet-count row a DataSource returns for
// AvailableOptions queries.
type OptionRow struct {
	ID    int
	Label string
	Count int
}
