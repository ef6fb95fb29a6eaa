package projets

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/projets/controllers"
	"gestion-projets-core/internal/modules/projets/services"
)

var Module = fx.Options(
	fx.Provide(services.NewProjetService),
	fx.Provide(controllers.NewProjetController),
	fx.Invoke(RegisterProjetsRoutes),
)

// RegisterProjetsRoutes monte /api/v1/projets et la liste des sous-projets d'un projet
func RegisterProjetsRoutes(r *gin.Engine, ctrl *controllers.ProjetController) {
	api := r.Group("/api/v1/projets")
	ctrl.Register(api)
	api.GET("/:id/sous-projets", ctrl.ListSousProjets)
}
