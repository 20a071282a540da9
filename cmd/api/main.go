package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/config"
	"github.com/thangam/billing-api/internal/infrastructure/database"
	"github.com/thangam/billing-api/internal/infrastructure/repository"
	"github.com/thangam/billing-api/internal/presentation/http/handler"
	"github.com/thangam/billing-api/internal/presentation/http/routes"
	"github.com/thangam/billing-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default settings
	if err := database.SeedDefaultSettings(db); err != nil {
		log.Printf("Warning: Failed to seed default settings: %v", err)
	}

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(printer.Config{
		Type:       cfg.Printer.Type,
		USBPath:    cfg.Printer.USBPath,
		SerialPort: cfg.Printer.SerialPort,
		BaudRate:   cfg.Printer.BaudRate,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewDummyPrinter()
	}

	// Initialize services
	billingService := service.NewBillingService(billRepo, productRepo, customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	receiptService := service.NewReceiptService(billRepo, settingsService, thermalPrinter, cfg.Printer.Type)
	reportService := service.NewReportService(billRepo)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill:     handler.NewBillHandler(billingService, receiptService),
		Report:   handler.NewReportHandler(reportService),
		Product:  handler.NewProductHandler(productService),
		Customer: handler.NewCustomerHandler(customerService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
