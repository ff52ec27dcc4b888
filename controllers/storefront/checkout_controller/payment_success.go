package checkout_controller

import (
	"log"
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
)

// PaymentSuccess godoc
// @Summary Record a successful payment callback
// @Description Receives the widget's success payload (payment id, order id, signature) and acknowledges it
// @Tags checkout
// @Accept json
// @Produce json
// @Param payment body models.PaymentSuccess true "Widget success payload"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/checkout/success [post]
func PaymentSuccess(c *gin.Context) {
	var payload models.PaymentSuccess
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("✅ Payment %s captured for order %s", payload.PaymentID, payload.OrderID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment successful", payload))
}
