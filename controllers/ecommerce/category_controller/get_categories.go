package category_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get the category tree with product counts and SEO slugs
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

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
		GROUP BY k.kKategorie, k.cName, k.kOberKategorie, seo.cSeo, k.nSort
		ORDER BY k.nSort, k.cName
	`

	var all []models.StorefrontCategory
	if err := config.StoreGorm.WithContext(ctx).
		Raw(query, config.Settings.LanguageID).
		Scan(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", buildTree(0, all)))
}

// buildTree nests the flat category rows under their parents.
func buildTree(parentID int, all []models.StorefrontCategory) []models.StorefrontCategory {
	nodes := make([]models.StorefrontCategory, 0)
	for _, cat := range all {
		if cat.ParentID != parentID || cat.ID == parentID {
			continue
		}
		cat.Subcategories = buildTree(cat.ID, all)
		nodes = append(nodes, cat)
	}
	return nodes
}
