package maitresouvrage

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/maitres-ouvrage/controllers"
	"gestion-projets-core/internal/modules/maitres-ouvrage/services"
)

var Module = fx.Options(
	fx.Provide(services.NewMaitreOuvrageService),
	fx.Provide(controllers.NewMaitreOuvrageController),
	fx.Invoke(RegisterMaitresOuvrageRoutes),
)

func RegisterMaitresOuvrageRoutes(r *gin.Engine, ctrl *controllers.MaitreOuvrageController) {
	ctrl.Register(r.Group("/api/v1/maitres-ouvrage"))
}
