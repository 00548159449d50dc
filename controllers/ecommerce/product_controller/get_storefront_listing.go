package product_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/filter"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontListing godoc
// @Summary Get the product listing of a storefront page
// @Description Compiles the navigation state (category, manufacturer, characteristic value or search special page) and the active filters into one listing query and returns the hydrated product page. Requests that belong on a canonical SEO page answer with a 301.
// @Tags Storefront - Products
// @Produce json
// @Param kKategorie query int false "Category page id"
// @Param kHersteller query int false "Manufacturer page id"
// @Param kMerkmalWert query int false "Characteristic value page id"
// @Param kSuchspecial query int false "Search special page id"
// @Param kKategorieFilter query []int false "Category filter ids (repeatable)"
// @Param kHerstellerFilter query []int false "Manufacturer filter ids (repeatable)"
// @Param MerkmalFilter_arr query []int false "Characteristic value filter ids (repeatable)"
// @Param kSuchspecialFilter query []int false "Search special filter ids (repeatable)"
// @Param SuchFilter_arr query []int false "Search cache filter ids (repeatable)"
// @Param cPreisspannenFilter query string false "Price range filter (min_max)"
// @Param nBewertungSterneFilter query int false "Minimum star rating"
// @Param availability query string false "Availability filter (in_stock | out_of_stock)"
// @Param cSuche query string false "Free-text search term"
// @Param kSuchanfrage query int false "Saved search query id"
// @Param nSortierung query int false "Sort order id" default(100)
// @Param nArtikelProSeite query int false "Items per page" default(20)
// @Param seite query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ListingResponse} "Products fetched successfully"
// @Failure 404 {object} models.ApiResponse "Unknown navigation entity"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontListing(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	params := filter.ParseParams(c.Request.URL.Query())
	engine := services.NewListingEngine()

	outcome, err := engine.InitStates(ctx, params, true)
	if err != nil {
		log.Printf("[listing] state init failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to resolve listing state"))
		return
	}
	if outcome.Redirect {
		c.Redirect(http.StatusMovedPermanently, outcome.Location)
		return
	}
	if engine.IsNotFound() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}

	results, err := engine.SearchResults(ctx, true)
	if err != nil {
		log.Printf("[listing] listing query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	body := models.ListingResponse{
		Products:     results.Products,
		ProductCount: results.ProductCount,
		VisibleCount: results.VisibleCount,
		OffsetStart:  results.Offset.Start,
		OffsetEnd:    results.Offset.End,
		SearchTerm:   results.SearchTerm,
		SearchError:  results.Error,
	}
	meta := &models.Pagination{
		Page:       results.Page,
		Limit:      results.PageSize,
		Total:      results.ProductCount,
		TotalPages: results.PageCount,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", body, meta))
}
