package models

// FilterMetadata represents all facet data for a listing state. Each group
// is counted against the state with itself left out.
type FilterMetadata struct {
	Categories      []FacetOption `json:"categories"`
	Manufacturers   []FacetOption `json:"manufacturers"`
	Characteristics []FacetOption `json:"characteristics"`
	PriceRanges     []FacetOption `json:"priceRanges"`
	Ratings         []FacetOption `json:"ratings"`
	SearchSpecials  []FacetOption `json:"searchSpecials"`
	Active          []FacetOption `json:"active"`
}

// FacetOption represents a single selectable facet value.
type FacetOption struct {
	Label  string `json:"label"`
	URL    string `json:"url,omitempty"`
	Value  string `json:"value"`
	Count  int    `json:"count"`
	Active bool   `json:"active,omitempty"`
}
