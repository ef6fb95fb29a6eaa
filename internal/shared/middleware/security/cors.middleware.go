package security

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/app/config"
)

// localOrigin origines du serveur de développement de la console
var localOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

// CORSMiddleware autorise les origines configurées et, en développement, les origines locales
func CORSMiddleware(appConfig *config.Config) gin.HandlerFunc {
	corsConfig := appConfig.GetCORS()
	allowLocal := appConfig.IsDevelopment()

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowLocal && localOrigin.MatchString(origin) {
				return true
			}
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin || allowedOrigin == "*" {
					return true
				}
			}
			return false
		},

		AllowMethods: corsConfig.AllowedMethods,

		AllowHeaders: append(append([]string{}, corsConfig.AllowedHeaders...),
			"Authorization",
			"X-Request-Id"),

		// Headers exposés au client
		ExposeHeaders: []string{
			"Content-Length",
			"X-Request-Id",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"Retry-After",
		},

		AllowCredentials: corsConfig.AllowCredentials,

		// Cache de la réponse preflight
		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	})
}
