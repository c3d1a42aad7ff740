// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/minimarket/marketplace-backend/internal/cache"
	"github.com/minimarket/marketplace-backend/internal/config"
	"github.com/minimarket/marketplace-backend/internal/handlers"
	"github.com/minimarket/marketplace-backend/internal/middleware"
	"github.com/minimarket/marketplace-backend/internal/services"
	"github.com/minimarket/marketplace-backend/internal/store"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Shared infrastructure, constructed once and injected.
	st := store.New(db)
	productCache := cache.New(cfg.Redis)

	// Services
	userService := services.NewUserService(st, cfg)
	productService := services.NewProductService(st, productCache)
	orderService := services.NewOrderService(st, productService)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialize storage; image uploads disabled")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"storage": st.Available(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.OptionalAuth(), authHandler.Me)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.GET("/mine", productHandler.GetMyProducts)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.POST("/upload-image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
			}
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/products", productHandler.ListAllProducts)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("/purchases", orderHandler.GetPurchases)
			orders.GET("/sales", orderHandler.GetSales)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}

	return r
}
