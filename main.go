// @title VH Ecom Storefront API
// @version 1.0
// @description Customer-facing storefront backend: catalog browsing, shopping bag, checkout handoff
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/controllers/storefront/bag_controller"
	"github.com/16SULPHUR/new-vh-ecom/controllers/storefront/checkout_controller"
	_ "github.com/16SULPHUR/new-vh-ecom/docs"
	"github.com/16SULPHUR/new-vh-ecom/routes/storefront_routes"
	"github.com/16SULPHUR/new-vh-ecom/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to the hosted platform
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiter)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Payment gateway credentials (checkout degrades gracefully without them)
	config.InitRazorpay()

	// Wire the bag pipeline: session -> gateway -> reconciler -> checkout
	gateway := services.DefaultCartGateway()
	reconciler := services.NewBagReconciler(gateway)
	razorpay := services.NewRazorpayClient(config.Razorpay.KeyID, config.Razorpay.KeySecret)
	checkout := services.NewCheckoutService(razorpay, config.Razorpay.BusinessName)

	bag_controller.Init(reconciler)
	checkout_controller.Init(checkout, reconciler)
	log.Println("✅ Bag reconciler wired")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true, // the cartId cookie must survive CORS
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	storefront_routes.SetupCatalogRoutes(api)
	storefront_routes.SetupBagRoutes(api)
	storefront_routes.SetupCheckoutRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := ":8081"
	fmt.Println("🚀 Server is running on http://localhost" + port)
	router.Run(port)
}
