package category_controller

import (
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryByID godoc
// @Summary Get a single storefront category
// @Description Get one category with its product count, SEO slug and direct subcategories
// @Tags Storefront - Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid category id"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	query := `
		SELECT
			k.kKategorie AS id,
			k.cName AS name,
			k.kOberKategorie AS parent_id,
			COALESCE(seo.cSeo, '') AS slug,
			COUNT(DISTINCT ka.kArtikel)::int AS product_count
		FROM tkategorie k
		LEFT JOIN tkategorieartikel ka ON ka.kKategorie = k.kKategorie
		LEFT JOIN tseo seo ON seo.cKey = 'kKategorie' AND seo.kKey = k.kKategorie AND seo.kSprache = ?
		WHERE k.kKategorie = ?
		GROUP BY k.kKategorie, k.cName, k.kOberKategorie, seo.cSeo
	`

	var category models.StorefrontCategory
	if err := config.StoreGorm.WithContext(ctx).
		Raw(query, config.Settings.LanguageID, id).
		Scan(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}
	if category.ID == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	subQuery := `
		SELECT kKategorie AS id, cName AS name, kOberKategorie AS parent_id
		FROM tkategorie
		WHERE kOberKategorie = ?
		ORDER BY nSort, cName
	`
	if err := config.StoreGorm.WithContext(ctx).
		Raw(subQuery, id).
		Scan(&category.Subcategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch subcategories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
