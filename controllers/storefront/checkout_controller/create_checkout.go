package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/16SULPHUR/new-vh-ecom/services"
	"github.com/gin-gonic/gin"
)

var (
	checkout   *services.CheckoutService
	reconciler *services.BagReconciler
)

// Init wires the checkout service and reconciler. Called once from main.
func Init(s *services.CheckoutService, r *services.BagReconciler) {
	checkout = s
	reconciler = r
}

// CreateCheckout godoc
// @Summary Initiate checkout
// @Description Re-fetches the bag, builds the line-item manifest and creates the payment-gateway order. Returns the options the widget is opened with.
// @Tags checkout
// @Accept json
// @Produce json
// @Param prefill body models.CheckoutPrefill false "Contact prefill"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/checkout [post]
func CreateCheckout(c *gin.Context) {
	cartID := middleware.CartIDFromContext(c)

	var prefill models.CheckoutPrefill
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&prefill); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Checkout always starts from fresh platform truth, never a stale view.
	view, err := reconciler.Refresh(ctx, cartID)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	options, err := checkout.InitiateCheckout(ctx, cartID, view, prefill)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout initiated", options))
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBagNotReady):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your bag is empty"))
	case errors.Is(err, services.ErrWidgetUnavailable):
		// Retryable: the widget failed to load or the gateway is unreachable.
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Payment is temporarily unavailable, please retry"))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to initiate checkout"))
	}
}
