package system

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/system/controllers"
	"gestion-projets-core/internal/modules/system/services"
)

// Module regroupe tous les providers du domaine System
var Module = fx.Options(
	fx.Provide(services.NewSystemService),
	fx.Provide(controllers.NewSystemController),
	fx.Invoke(RegisterSystemRoutes),
)

// RegisterSystemRoutes configure les routes Gin pour System
func RegisterSystemRoutes(r *gin.Engine, ctrl *controllers.SystemController) {
	api := r.Group("/api/v1/system")
	{
		api.GET("/info", ctrl.GetSystemInfo)
		// Import d'un export localStorage dans le stockage local
		api.POST("/offline/synchronised", ctrl.SynchronizeOffline)
	}
}
