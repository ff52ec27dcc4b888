package product_controller

import (
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// GetProductsFromCollection godoc
// @Summary Get products from a curated collection
// @Tags store
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/collections/{name}/products [get]
func GetProductsFromCollection(c *gin.Context) {
	collectionName := toTitleCase(c.Param("name"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `SELECT ` + catalogColumns + ` FROM get_products_from_collection($1)`
	products, err := fetchCatalogProducts(ctx, config.StoreDB, query, collectionName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
