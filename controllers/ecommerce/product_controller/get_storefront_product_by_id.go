package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Returns one hydrated product by its id.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProduct} "Product fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product id"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	product, err := services.NewProductFillService(config.Settings.LanguageID).FillProduct(ctx, id)
	if err != nil {
		log.Printf("[listing] product %d hydration failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
