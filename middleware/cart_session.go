package middleware

import (
	"net/http"

	"github.com/16SULPHUR/new-vh-ecom/services"
	"github.com/gin-gonic/gin"
)

// CartSession guarantees a durable anonymous shopper identifier exists before
// any bag operation runs. An existing cookie is never overwritten; a missing
// or malformed one gets a freshly minted token. The id is exposed to
// handlers via the "cartID" context key.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, _ := c.Cookie(services.CartSessionCookie)

		cartID, minted := services.EnsureSessionID(existing)
		if minted {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(services.CartSessionCookie, cartID, services.CartSessionMaxAge, "/", "", false, true)
		}

		c.Set("cartID", cartID)
		c.Next()
	}
}

// CartIDFromContext returns the session id set by CartSession.
func CartIDFromContext(c *gin.Context) string {
	if v, exists := c.Get("cartID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
