package filter_controller

import (
	"context"
	"log"
	"net/http"
	"sync"

	facet_cache "github.com/Velora-Commerce/velora-storefront-backend/cache"
	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/filter"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get facet metadata for a listing state
// @Description Returns the selectable options of every facet group, each counted against the current navigation state with its own group left out. Accepts the same query parameters as the listing endpoint.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 404 {object} models.ApiResponse "Unknown navigation entity"
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	params := filter.ParseParams(c.Request.URL.Query())
	engine := services.NewListingEngine()

	if _, err := engine.InitStates(ctx, params, false); err != nil {
		log.Printf("[facets] state init failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to resolve listing state"))
		return
	}
	if engine.IsNotFound() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}

	stateKey := facetStateKey(c)
	if metadata, ok := facet_cache.Get(stateKey); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
		return
	}

	// One count query per facet group; run them concurrently. The facet
	// queries only read the compiled state, so the fan-out is safe.
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := models.FilterMetadata{
		Active: toFacetOptions(engine.ActiveSelections()),
	}
	var errs []error

	collect := func(dst *[]models.FacetOption, load func(context.Context) ([]filter.Option, error)) {
		defer wg.Done()
		opts, err := load(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = toFacetOptions(opts)
	}

	wg.Add(6)
	go collect(&metadata.Categories, engine.CategoryOptions)
	go collect(&metadata.Manufacturers, engine.ManufacturerOptions)
	go collect(&metadata.Characteristics, engine.CharacteristicOptions)
	go collect(&metadata.PriceRanges, engine.PriceRangeOptions)
	go collect(&metadata.Ratings, engine.RatingOptions)
	go collect(&metadata.SearchSpecials, engine.SearchSpecialOptions)
	wg.Wait()

	if len(errs) > 0 {
		log.Printf("[facets] %d facet queries failed, first: %v", len(errs), errs[0])
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	facet_cache.Set(stateKey, metadata)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// facetStateKey identifies a listing state for caching. Page and sort do not
// change facet counts, so they stay out of the key.
func facetStateKey(c *gin.Context) string {
	q := c.Request.URL.Query()
	q.Del("seite")
	q.Del("nSortierung")
	q.Del("nArtikelProSeite")
	return q.Encode()
}

func toFacetOptions(opts []filter.Option) []models.FacetOption {
	out := make([]models.FacetOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, models.FacetOption{
			Label:  o.Label,
			URL:    o.URL,
			Value:  o.Value,
			Count:  o.Count,
			Active: o.Active,
		})
	}
	return out
}
