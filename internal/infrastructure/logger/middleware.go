package logger

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var skipPaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/metrics": true,
}

type LoggerMiddleware struct {
	log *zap.Logger
}

func NewMiddleware(log *zap.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{log: log.Named("http")}
}

// GinLogger journalise chaque requête hors sondes
func (lm *LoggerMiddleware) GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if skipPaths[c.Request.URL.Path] {
			return
		}

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			lm.log.Error("requête", fields...)
		case status >= http.StatusBadRequest:
			lm.log.Warn("requête", fields...)
		default:
			lm.log.Info("requête", fields...)
		}
	}
}

// GinRecovery capture les panics et retourne une réponse d'erreur propre
func (lm *LoggerMiddleware) GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)

				lm.log.Error("panic recovered",
					zap.Any("error", recovered),
					zap.String("stack", string(stack[:n])),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("client_ip", c.ClientIP()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Une erreur interne s'est produite",
					"data":    nil,
					"details": map[string]interface{}{
						"code": "INTERNAL_ERROR",
					},
				})
			}
		}()
		c.Next()
	}
}
