package storefront_routes

import (
	"time"

	store_bag "github.com/16SULPHUR/new-vh-ecom/controllers/storefront/bag_controller"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBagRoutes(router *gin.RouterGroup) {
	// Every bag route needs a durable session id before it runs.
	bag := router.Group("/store/bag")
	bag.Use(middleware.CartSession())

	bag.GET("", store_bag.GetBag)

	// Mutations are rate limited; reads are not.
	items := bag.Group("/items")
	items.Use(middleware.RateLimiter(60, time.Minute))
	{
		items.PUT("", store_bag.UpsertBagItem)
		items.DELETE("/:variantId", store_bag.RemoveBagItem)
	}
}
