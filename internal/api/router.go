package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/api/handlers"
	"github.com/emberwick/storefront-api/internal/api/middleware"
	"github.com/emberwick/storefront-api/internal/config"
	"github.com/emberwick/storefront-api/internal/repository"
	"github.com/emberwick/storefront-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	magic *service.MagicRequestService,
	checkout *service.CheckoutService,
	repos *repository.Repositories,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Storefront API",
			"endpoints": []string{
				"GET /health",
				"POST /v1/magic-requests",
				"GET /v1/magic-requests/:id",
				"POST /v1/checkout",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		magicRoutes := v1.Group("/magic-requests")
		magicRoutes.Use(middleware.IdempotencyMiddleware(repos, logger))
		{
			magicRoutes.POST("", handlers.HandleMagicRequestSubmit(magic, repos, logger))
			magicRoutes.GET("/:id", handlers.HandleMagicRequestStatus(magic, logger))
		}

		v1.POST("/checkout", handlers.HandleCheckout(checkout, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
