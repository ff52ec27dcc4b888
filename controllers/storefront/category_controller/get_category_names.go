package category_controller

import (
	"net/http"

	catalog_cache "github.com/16SULPHUR/new-vh-ecom/cache"
	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryNames godoc
// @Summary Get all category names
// @Description Category names for the storefront navigation, cached in-process
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategoryNames(c *gin.Context) {
	if names, ok := catalog_cache.GetCategoryNames(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", names))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.StoreDB.Query(ctx, `SELECT name FROM get_all_category_names()`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	catalog_cache.SetCategoryNames(names)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", names))
}
