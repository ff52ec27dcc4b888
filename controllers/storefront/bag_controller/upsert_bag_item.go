package bag_controller

import (
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// UpsertBagItem godoc
// @Summary Add a variant to the bag or set its quantity
// @Description Sets the absolute quantity for a variant (re-adding replaces, never merges). Quantity 0 removes the item. The response is the re-fetched authoritative bag.
// @Tags bag
// @Accept json
// @Produce json
// @Param item body models.UpsertBagItemRequest true "Variant and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/bag/items [put]
func UpsertBagItem(c *gin.Context) {
	cartID := middleware.CartIDFromContext(c)

	var req models.UpsertBagItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := reconciler.SetQuantity(ctx, cartID, req.VariantID, req.Quantity)
	if err != nil {
		respondBagError(c, view, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", view))
}
