package filter

// Child-product visibility modes (tri-state shop setting).
const (
	ChildProductsParentsOnly  = 0 // never list child products
	ChildProductsWhenFiltered = 1 // include children while filters are active or in listing mode
	ChildProductsAlways       = 2 // always include children
)

// Stock-filter modes.
const (
	StockFilterNone           = 0 // no stock condition
	StockFilterHideOutOfStock = 1 // hide products without stock
	StockFilterNegativeAware  = 2 // allow negative-stock products, check variant stock
)

// FilterContext carries the request-scoped customer and shop configuration
// every filter and the compiler read from. It replaces ambient session/global
// lookups: build it once per request and pass it down.
type FilterContext struct {
	CustomerGroupID int
	LanguageID      int
	BaseURL         string

	ChildProductMode int
	StockFilterMode  int
	VisibilityCheck  bool
	DefaultPageSize  int
}

// DefaultContext returns the context used when no session data is available
// (anonymous storefront visitor, default language).
func DefaultContext() FilterContext {
	return FilterContext{
		CustomerGroupID:  1,
		LanguageID:       1,
		BaseURL:          "/",
		ChildProductMode: ChildProductsWhenFiltered,
		StockFilterMode:  StockFilterNone,
		VisibilityCheck:  true,
		DefaultPageSize:  20,
	}
}
