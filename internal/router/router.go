// Package router assembles the gin engine: middleware, handlers and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spreadscan/internal/handlers"
	"spreadscan/internal/middleware"
	"spreadscan/internal/services"
)

// Services are the business services the routes are served from.
type Services struct {
	Users   services.UserServicer
	Spreads services.SpreadServicer
	Scanner services.ScannerServicer
	Filters services.FilterPresetServicer
	Audit   services.AuditServicer
}

// Options toggles the optional parts of the router.
type Options struct {
	// PipelineAPIKey guards /pipeline; empty disables those routes with 503.
	PipelineAPIKey string
	// Swagger mounts the generated API docs at /swagger.
	Swagger bool
	// RequestLogging logs every request through the "http" logger.
	RequestLogging bool
}

// New builds the engine with every route mounted.
func New(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users)
	spreadHandler := handlers.NewSpreadHandler(svc.Spreads)
	scannerHandler := handlers.NewScannerHandler(svc.Scanner, svc.Audit)
	filterHandler := handlers.NewFilterHandler(svc.Filters, svc.Scanner, svc.Audit)
	pipelineHandler := handlers.NewPipelineHandler(svc.Spreads, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Pipeline routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(opts.PipelineAPIKey))
	pipeline.POST("/spreads", pipelineHandler.ImportSpreads)
	pipeline.GET("/spreads", pipelineHandler.ListSpreads)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	spreads := protected.Group("/spreads")
	spreads.GET("", spreadHandler.ListSpreads)
	spreads.GET("/:id", spreadHandler.GetSpread)

	protected.GET("/scanner", scannerHandler.GetScanner)
	protected.GET("/scanner/quick-filters", scannerHandler.GetQuickFilters)
	protected.GET("/opportunities", scannerHandler.GetOpportunities)
	protected.GET("/analytics", scannerHandler.GetAnalytics)

	scans := protected.Group("/scans")
	scans.POST("", scannerHandler.StartScan)
	scans.GET("", scannerHandler.ListScans)
	scans.GET("/:id", scannerHandler.GetScan)

	filters := protected.Group("/filters")
	filters.POST("", filterHandler.CreateFilter)
	filters.GET("", filterHandler.ListFilters)
	filters.GET("/:id", filterHandler.GetFilter)
	filters.DELETE("/:id", filterHandler.DeleteFilter)
	filters.GET("/:id/scan", filterHandler.ScanWithFilter)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
