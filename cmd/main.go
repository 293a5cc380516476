package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/internal/store"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/jwtutil"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Pick the persistence gateway. The choice is made once here and holds
	// for the whole session.
	var st store.Store
	switch appConfig.DataSource {
	case config.DataSourceFixture:
		mem := store.NewMemStore()
		mem.Seed(1)
		st = mem
		log.Info("Using fixture data source")
	default:
		db, err := database.InitDB(appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		gs := store.NewGormStore(db)
		if err := gs.Migrate(); err != nil {
			log.Fatal("Failed to run database migrations", zap.Error(err))
		}
		st = gs
		log.Info("Database connection established")
	}

	h := handler.New(st)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Product API routes - Apply auth middleware to extract the store owner
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", h.ListProducts)
	productAPI.GET("/:id", h.GetProduct)
	productAPI.POST("", h.CreateProduct)
	productAPI.PUT("/:id", h.UpdateProduct)
	productAPI.DELETE("/:id", h.DeleteProduct)

	// Purchase API routes
	purchaseAPI := e.Group("/api/purchases", mid.AuthMiddleware)
	purchaseAPI.GET("", h.ListPurchases)
	purchaseAPI.POST("", h.CreatePurchase)

	// Sale API routes
	saleAPI := e.Group("/api/sales", mid.AuthMiddleware)
	saleAPI.GET("", h.ListSales)
	saleAPI.POST("", h.CreateSale)

	// Dashboard and reports
	e.GET("/api/dashboard", h.Dashboard, mid.AuthMiddleware)
	e.GET("/api/reports/suppliers", h.SupplierReport, mid.AuthMiddleware)

	// Store settings
	settingsAPI := e.Group("/api/settings", mid.AuthMiddleware)
	settingsAPI.GET("", h.GetSettings)
	settingsAPI.PUT("", h.SaveSettings)
	settingsAPI.GET("/business-types", h.ListBusinessTypes)
	settingsAPI.POST("/business-type", h.ApplyBusinessType)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
