package services

import (
	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/filter"
)

// NewListingEngine assembles a request-scoped listing engine from the
// configured store settings and the shared collaborators.
func NewListingEngine() *filter.ProductFilter {
	fctx := filter.FilterContext{
		CustomerGroupID:  config.Settings.CustomerGroupID,
		LanguageID:       config.Settings.LanguageID,
		BaseURL:          config.Settings.BaseURL,
		ChildProductMode: config.Settings.ChildProductMode,
		StockFilterMode:  config.Settings.StockFilterMode,
		VisibilityCheck:  config.Settings.VisibilityCheck,
		DefaultPageSize:  config.Settings.PageSize,
	}
	return filter.NewProductFilter(
		fctx,
		filter.NewGormDataSource(config.StoreGorm),
		NewSearchService(),
		NewProductFillService(fctx.LanguageID),
	)
}
