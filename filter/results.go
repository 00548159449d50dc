package filter

import "github.com/Velora-Commerce/velora-storefront-backend/models"

// OffsetPair is the 1-based display range of the current page
// ("showing products Start to End").
type OffsetPair struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SearchResults is the outcome of one listing compilation: the matching
// product ids, the hydrated page, pagination metadata and - for failed
// searches - the preserved error message.
type SearchResults struct {
	ProductIDs   []int
	Products     []models.StorefrontProduct
	ProductCount int
	VisibleCount int
	Offset       OffsetPair
	Page         int
	PageCount    int
	PageSize     int
	SearchTerm   string
	Error        string
}

// failedSearch builds the explained empty result set replacing the listing
// when a search cannot be resolved.
func failedSearch(term, msg string) *SearchResults {
	return &SearchResults{
		ProductIDs: []int{},
		Products:   []models.StorefrontProduct{},
		SearchTerm: term,
		Error:      msg,
	}
}

// paginate computes the 1-based display offsets and page count for a result
// set. For total=47, size=20: page 2 covers (21, 40), page 3 covers (41, 47).
func paginate(total, pageSize, page int) (OffsetPair, int) {
	if total <= 0 || pageSize <= 0 {
		return OffsetPair{}, 0
	}
	pageCount := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page-1)*pageSize + 1
	end := page * pageSize
	if end > total {
		end = total
	}
	return OffsetPair{Start: start, End: end}, pageCount
}
