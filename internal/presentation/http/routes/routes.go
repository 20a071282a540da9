package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/config"
	"github.com/thangam/billing-api/internal/presentation/http/handler"
	"github.com/thangam/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill     *handler.BillHandler
	Report   *handler.ReportHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.GET("/:id/receipt", h.Bill.Receipt)
		bills.GET("/:id/receipt.pdf", h.Bill.ReceiptPDF)
		bills.POST("/:id/print", h.Bill.Print)
		bills.POST("/:id/email", h.Bill.Email)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/lookup", h.Customer.Lookup)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/settings", h.Settings.GetSettings)
	v1.PUT("/settings", h.Settings.UpdateSettings)
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
