package bag_controller

import (
	"net/http"
	"strconv"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// RemoveBagItem godoc
// @Summary Remove a variant from the bag
// @Description Deletes the line item keyed by (session, variant). The response is the re-fetched authoritative bag.
// @Tags bag
// @Produce json
// @Param variantId path int true "Variant ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/bag/items/{variantId} [delete]
func RemoveBagItem(c *gin.Context) {
	cartID := middleware.CartIDFromContext(c)

	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil || variantID < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid variant ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := reconciler.Remove(ctx, cartID, variantID)
	if err != nil {
		respondBagError(c, view, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", view))
}
