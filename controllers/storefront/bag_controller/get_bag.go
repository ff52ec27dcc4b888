package bag_controller

import (
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// GetBag godoc
// @Summary Get the shopper's bag
// @Description Authoritative fetch of the session's line items with joined display and stock data
// @Tags bag
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/bag [get]
func GetBag(c *gin.Context) {
	cartID := middleware.CartIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := reconciler.Refresh(ctx, cartID)
	if err != nil {
		// Non-fatal: the view carries the error state and an empty bag.
		c.JSON(http.StatusOK, models.ApiResponse{
			Message:         "Error fetching cart items",
			Error:           true,
			Data:            view,
			RequestedEntity: c.Request.Method + " " + c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", view))
}
