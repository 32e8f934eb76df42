package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/avellanos/backend/internal/application/catalog"
	inventoryapp "github.com/avellanos/backend/internal/application/inventory"
	logisticsapp "github.com/avellanos/backend/internal/application/logistics"
	partnerapp "github.com/avellanos/backend/internal/application/partner"
	processingapp "github.com/avellanos/backend/internal/application/processing"
	procurementapp "github.com/avellanos/backend/internal/application/procurement"
	reportapp "github.com/avellanos/backend/internal/application/report"
	tradeapp "github.com/avellanos/backend/internal/application/trade"
	"github.com/avellanos/backend/internal/infrastructure/config"
	"github.com/avellanos/backend/internal/infrastructure/logger"
	"github.com/avellanos/backend/internal/infrastructure/persistence"
	"github.com/avellanos/backend/internal/interfaces/http/handler"
	"github.com/avellanos/backend/internal/interfaces/http/middleware"
	"github.com/avellanos/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Avellanos Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	serviceSupplierRepo := persistence.NewGormServiceSupplierRepository(db.DB)
	rawMaterialRepo := persistence.NewGormRawMaterialRepository(db.DB)
	finishedProductRepo := persistence.NewGormFinishedProductRepository(db.DB)
	rawStockRepo := persistence.NewGormRawMaterialStockRepository(db.DB)
	finishedStockRepo := persistence.NewGormFinishedGoodsStockRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	operationRepo := persistence.NewGormOperationRepository(db.DB)
	costRepo := persistence.NewGormCostRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	docRepo := persistence.NewGormExportDocumentationRepository(db.DB)

	// Transaction scope for stock-adjusting workflows
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize application services
	partnerTxScope := persistence.NewGormPartnerTransactionScope(db.DB)
	clientService := partnerapp.NewClientService(clientRepo, salesOrderRepo, partnerTxScope)
	supplierService := partnerapp.NewSupplierService(supplierRepo, purchaseRepo)
	serviceSupplierService := partnerapp.NewServiceSupplierService(serviceSupplierRepo, serviceRepo)
	rawMaterialService := catalogapp.NewRawMaterialService(rawMaterialRepo, rawStockRepo, purchaseRepo, operationRepo)
	finishedProductService := catalogapp.NewFinishedProductService(finishedProductRepo, finishedStockRepo, operationRepo, salesOrderRepo)
	inventoryService := inventoryapp.NewInventoryService(rawStockRepo, finishedStockRepo)
	purchaseService := procurementapp.NewPurchaseService(purchaseRepo, supplierRepo, rawMaterialRepo, txScope)
	operationService := processingapp.NewOperationService(operationRepo, costRepo, rawMaterialRepo, finishedProductRepo, txScope)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, clientRepo, finishedProductRepo, shipmentRepo)
	quotationService := tradeapp.NewQuotationService(quotationRepo, clientRepo, finishedProductRepo)
	shipmentService := logisticsapp.NewShipmentService(shipmentRepo, serviceRepo, salesOrderRepo, serviceSupplierRepo)
	documentationService := logisticsapp.NewDocumentationService(docRepo, shipmentRepo)
	dashboardService := reportapp.NewDashboardService(salesOrderRepo, operationRepo, shipmentRepo, docRepo, finishedStockRepo)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	serviceSupplierHandler := handler.NewServiceSupplierHandler(serviceSupplierService)
	rawMaterialHandler := handler.NewRawMaterialHandler(rawMaterialService)
	finishedProductHandler := handler.NewFinishedProductHandler(finishedProductService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	operationHandler := handler.NewOperationHandler(operationService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	quotationHandler := handler.NewQuotationHandler(quotationService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	documentationHandler := handler.NewDocumentationHandler(documentationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Partner domain (clients, suppliers, service suppliers)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/clients", clientHandler.Create)
	partnerRoutes.GET("/clients", clientHandler.List)
	partnerRoutes.GET("/clients/:id", clientHandler.GetByID)
	partnerRoutes.PUT("/clients/:id", clientHandler.Update)
	partnerRoutes.DELETE("/clients/:id", clientHandler.Delete)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	partnerRoutes.POST("/service-suppliers", serviceSupplierHandler.Create)
	partnerRoutes.GET("/service-suppliers", serviceSupplierHandler.List)
	partnerRoutes.GET("/service-suppliers/:id", serviceSupplierHandler.GetByID)
	partnerRoutes.PUT("/service-suppliers/:id", serviceSupplierHandler.Update)
	partnerRoutes.DELETE("/service-suppliers/:id", serviceSupplierHandler.Delete)
	r.Register(partnerRoutes)

	// Catalog domain (raw materials, finished products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/raw-materials", rawMaterialHandler.Create)
	catalogRoutes.GET("/raw-materials", rawMaterialHandler.List)
	catalogRoutes.GET("/raw-materials/:id", rawMaterialHandler.GetByID)
	catalogRoutes.PUT("/raw-materials/:id", rawMaterialHandler.Update)
	catalogRoutes.DELETE("/raw-materials/:id", rawMaterialHandler.Delete)
	catalogRoutes.POST("/finished-products", finishedProductHandler.Create)
	catalogRoutes.GET("/finished-products", finishedProductHandler.List)
	catalogRoutes.GET("/finished-products/:id", finishedProductHandler.GetByID)
	catalogRoutes.PUT("/finished-products/:id", finishedProductHandler.Update)
	catalogRoutes.DELETE("/finished-products/:id", finishedProductHandler.Delete)
	r.Register(catalogRoutes)

	// Procurement domain (raw material purchases)
	procurementRoutes := router.NewDomainGroup("procurement", "/procurement")
	procurementRoutes.POST("/purchases", purchaseHandler.Create)
	procurementRoutes.GET("/purchases", purchaseHandler.List)
	procurementRoutes.GET("/purchases/:id", purchaseHandler.GetByID)
	procurementRoutes.PUT("/purchases/:id", purchaseHandler.Update)
	procurementRoutes.POST("/purchases/:id/fulfill", purchaseHandler.Fulfill)
	procurementRoutes.DELETE("/purchases/:id", purchaseHandler.Delete)
	r.Register(procurementRoutes)

	// Processing domain (operations and costs)
	processingRoutes := router.NewDomainGroup("processing", "/processing")
	processingRoutes.POST("/operations", operationHandler.Create)
	processingRoutes.GET("/operations", operationHandler.List)
	processingRoutes.GET("/operations/:id", operationHandler.GetByID)
	processingRoutes.PUT("/operations/:id", operationHandler.Update)
	processingRoutes.POST("/operations/:id/costs", operationHandler.AddCost)
	processingRoutes.DELETE("/operations/:id/costs/:cost_id", operationHandler.RemoveCost)
	processingRoutes.POST("/operations/:id/post", operationHandler.Post)
	processingRoutes.DELETE("/operations/:id", operationHandler.Delete)
	r.Register(processingRoutes)

	// Inventory domain (read-only stock views)
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/raw-materials", inventoryHandler.ListRawMaterialStocks)
	inventoryRoutes.GET("/raw-materials/:id", inventoryHandler.GetRawMaterialStock)
	inventoryRoutes.GET("/finished-products", inventoryHandler.ListFinishedGoodsStocks)
	inventoryRoutes.GET("/finished-products/:id", inventoryHandler.GetFinishedGoodsStock)
	r.Register(inventoryRoutes)

	// Trade domain (sales orders, quotations)
	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.POST("/orders", salesOrderHandler.Create)
	tradeRoutes.GET("/orders", salesOrderHandler.List)
	tradeRoutes.GET("/orders/:id", salesOrderHandler.GetByID)
	tradeRoutes.PUT("/orders/:id", salesOrderHandler.Update)
	tradeRoutes.POST("/orders/:id/items", salesOrderHandler.AddItem)
	tradeRoutes.POST("/orders/:id/confirm", salesOrderHandler.Confirm)
	tradeRoutes.DELETE("/orders/:id", salesOrderHandler.Delete)
	tradeRoutes.POST("/quotations", quotationHandler.Create)
	tradeRoutes.GET("/quotations", quotationHandler.List)
	tradeRoutes.GET("/quotations/:id", quotationHandler.GetByID)
	tradeRoutes.PUT("/quotations/:id", quotationHandler.Update)
	tradeRoutes.POST("/quotations/:id/convert", quotationHandler.MarkConverted)
	tradeRoutes.DELETE("/quotations/:id", quotationHandler.Delete)
	r.Register(tradeRoutes)

	// Logistics domain (shipments, services, export documentation)
	logisticsRoutes := router.NewDomainGroup("logistics", "/logistics")
	logisticsRoutes.POST("/shipments", shipmentHandler.Create)
	logisticsRoutes.GET("/shipments", shipmentHandler.List)
	logisticsRoutes.GET("/shipments/:id", shipmentHandler.GetByID)
	logisticsRoutes.PUT("/shipments/:id", shipmentHandler.Update)
	logisticsRoutes.POST("/shipments/:id/services", shipmentHandler.AddService)
	logisticsRoutes.POST("/shipments/:id/services/:service_id/pay", shipmentHandler.MarkServicePaid)
	logisticsRoutes.DELETE("/shipments/:id/services/:service_id", shipmentHandler.RemoveService)
	logisticsRoutes.GET("/shipments/:id/documentation", documentationHandler.GetByShipment)
	logisticsRoutes.DELETE("/shipments/:id", shipmentHandler.Delete)
	logisticsRoutes.POST("/documentation", documentationHandler.Create)
	logisticsRoutes.GET("/documentation", documentationHandler.List)
	logisticsRoutes.GET("/documentation/:id", documentationHandler.GetByID)
	logisticsRoutes.PUT("/documentation/:id", documentationHandler.Update)
	logisticsRoutes.POST("/documentation/:id/send", documentationHandler.MarkSent)
	logisticsRoutes.DELETE("/documentation/:id", documentationHandler.Delete)
	r.Register(logisticsRoutes)

	// Report domain (dashboard counters)
	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/dashboard", dashboardHandler.Get)
	r.Register(reportRoutes)

	// Setup routes
	r.Setup()

	// Simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
