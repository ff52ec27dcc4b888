package product_controller

import (
	"net/http"

	catalog_cache "github.com/16SULPHUR/new-vh-ecom/cache"
	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// GetLatestProducts godoc
// @Summary Get latest products
// @Description Most recently added active products with colour/size options, for the landing carousel
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/latest [get]
func GetLatestProducts(c *gin.Context) {
	if products, ok := catalog_cache.GetLatest(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `SELECT ` + catalogColumns + ` FROM get_latest_products()`
	products, err := fetchCatalogProducts(ctx, config.StoreDB, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	catalog_cache.SetLatest(products)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
