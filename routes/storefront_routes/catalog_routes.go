package storefront_routes

import (
	store_category "github.com/16SULPHUR/new-vh-ecom/controllers/storefront/category_controller"
	store_product "github.com/16SULPHUR/new-vh-ecom/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.RouterGroup) {
	// Catalog routes (public, read-only)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("/latest", store_product.GetLatestProducts)
		products.GET("/:id", store_product.GetProductDetails)
	}

	store.GET("/collections/:name/products", store_product.GetProductsFromCollection)

	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategoryNames)
		categories.GET("/:name/products", store_product.GetProductsFromCategory)
	}
}
