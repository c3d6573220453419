package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"holiday-poster-funnel/internal/checkout"
	"holiday-poster-funnel/internal/config"
	"holiday-poster-funnel/internal/handlers"
	"holiday-poster-funnel/internal/middleware"
	"holiday-poster-funnel/internal/storage"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.New(cfg.UploadsDir, cfg.OrdersDir)
	if err != nil {
		log.Fatalf("Failed to prepare storage directories: %v", err)
	}

	var checkoutClient *checkout.Client
	if cfg.CheckoutEnabled() {
		checkoutClient = checkout.NewClient(cfg.CheckoutAPIBaseURL, cfg.CheckoutSecretKey)
	} else {
		log.Println("STRIPE_SECRET_KEY not set; orders will be acknowledged without checkout")
	}

	orderHandler := handlers.NewOrderHandler(cfg, store, checkoutClient)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// Serve uploads locally for proof previews. No access control.
	router.Static(storage.UploadsPublicPrefix, store.UploadsDir())

	api := router.Group("/api/holiday-movie-poster")
	api.POST("/order", orderHandler.Create)
	api.GET("/order/:order_id", orderHandler.Get)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
