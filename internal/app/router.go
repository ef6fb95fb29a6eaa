package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/logger"
	"gestion-projets-core/internal/infrastructure/metrics"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/shared/middleware/auth"
	"gestion-projets-core/internal/shared/middleware/security"
)

const readinessTimeout = 3 * time.Second

func NewRouter(
	cfg *config.Config,
	logMiddleware *logger.LoggerMiddleware,
	limiter *security.RateLimiter,
	tokens *auth.TokenMiddleware,
	backend *upstream.Client,
) *gin.Engine {
	// Set Gin mode based on environment
	configureGinMode(cfg.Environment)

	// Create router without default middleware for custom configuration
	r := gin.New()

	// Middlewares dans l'ordre d'importance
	r.Use(logMiddleware.GinRecovery())
	r.Use(logMiddleware.GinLogger())
	r.Use(metrics.GinMiddleware())
	r.Use(security.CORSMiddleware(cfg))
	r.Use(limiter.Handler())
	r.Use(tokens.Handler())

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	// Prêt dès que le backend REST répond
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := backend.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": "Backend REST injoignable",
				"data":    nil,
				"details": gin.H{"code": "BACKEND_UNREACHABLE"},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	default:
		// Mode debug par défaut pour développement local
		gin.SetMode(gin.DebugMode)
	}
}
