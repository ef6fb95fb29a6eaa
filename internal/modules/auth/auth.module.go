package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/auth/controllers"
	"gestion-projets-core/internal/modules/auth/services"
)

// Module regroupe tous les providers du domaine Auth
var Module = fx.Options(
	fx.Provide(services.NewAuthService),
	fx.Provide(controllers.NewAuthController),
	fx.Invoke(RegisterAuthRoutes),
)

// RegisterAuthRoutes configure les routes Gin pour l'authentification
func RegisterAuthRoutes(r *gin.Engine, authController *controllers.AuthController) {
	authAPI := r.Group("/api/v1/auth")
	{
		authAPI.POST("/login", authController.Login)
		authAPI.POST("/logout", authController.Logout)
		authAPI.GET("/me", authController.Me)
	}
}
