// @title Velora Storefront API
// @version 1.0
// @description Velora Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	_ "github.com/Velora-Commerce/velora-storefront-backend/docs"
	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/routes/ecommerce_routes"
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
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// Listing settings
	config.InitSettings()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront, rate limited per IP
	store := api.Group("")
	store.Use(middleware.RateLimiter(300, time.Minute))
	ecommerce_routes.SetupStorefrontRoutes(store)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
