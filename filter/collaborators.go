package filter

import (
	"context"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// SearchEntry identifies one resolved free-text search: the saved query row
// (tsuchanfrage) and the hit cache (tsuchcache) built for it.
type SearchEntry struct {
	QueryID int    // kSuchanfrage
	CacheID int    // kSuchCache
	Term    string // sanitized search term
	Err     string // non-empty when the search could not be resolved
}

// SearchProvider creates and loads search-cache entries. The engine never
// writes the cache tables itself.
type SearchProvider interface {
	// EnsureCache sanitizes the term and finds or creates the cache entry
	// holding its hits.
	EnsureCache(ctx context.Context, term string, languageID int) (SearchEntry, error)
	// LoadSaved loads the cache entry of a saved query id.
	LoadSaved(ctx context.Context, queryID int, languageID int) (SearchEntry, error)
	// RecordHitCount persists the result count on the saved query.
	RecordHitCount(ctx context.Context, queryID, hits int) error
}

// ProductHydrator fills a product id into a display-ready product. A nil
// product with a nil error means the row is hidden for the current context
// and must be dropped from the page.
type ProductHydrator interface {
	FillProduct(ctx context.Context, productID int) (*models.StorefrontProduct, error)
}

// SlugResolver is the slice of DataSource the validator needs; it is split
// out so redirect logic is testable without a database.
type SlugResolver interface {
	Slug(ctx context.Context, keyName string, id, languageID int) (string, error)
}
