package checkout_controller

import (
	"log"
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// PaymentFailed godoc
// @Summary Record a failed payment callback
// @Description Receives the widget's payment.failed payload and passes it through verbatim, no reinterpretation
// @Tags checkout
// @Accept json
// @Produce json
// @Param failure body models.PaymentFailure true "Widget failure payload"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/checkout/failure [post]
func PaymentFailed(c *gin.Context) {
	var payload models.PaymentFailure
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("❌ Payment failed for order %s: %s (%s/%s): %s",
		payload.OrderID, payload.Code, payload.Source, payload.Step, payload.Description)

	c.JSON(http.StatusOK, models.ApiResponse{
		Message:         "Payment failed",
		Error:           true,
		Data:            payload,
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	})
}
