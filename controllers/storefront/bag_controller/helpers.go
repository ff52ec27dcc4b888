package bag_controller

import (
	"errors"
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/16SULPHUR/new-vh-ecom/services"
	"github.com/gin-gonic/gin"
)

var reconciler *services.BagReconciler

// Init wires the shared reconciler. Called once from main after config init.
func Init(r *services.BagReconciler) {
	reconciler = r
}

// respondBagError converts a reconciler failure into a structured,
// non-throwing notification. The view still carries the last known-good
// items, so the client can keep rendering the bag.
func respondBagError(c *gin.Context, view models.BagView, err error) {
	status := http.StatusBadGateway
	message := "Failed to update cart"

	switch {
	case services.IsValidation(err):
		status = http.StatusUnprocessableEntity
		message = "Requested quantity exceeds available stock"
	case errors.Is(err, services.ErrVariantBusy):
		status = http.StatusConflict
		message = "This item is already being updated"
	}

	c.JSON(status, models.ApiResponse{
		Message:         message,
		Error:           true,
		Data:            view,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	})
}
