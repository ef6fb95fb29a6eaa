package sousprojets

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/sous-projets/controllers"
	"gestion-projets-core/internal/modules/sous-projets/services"
)

var Module = fx.Options(
	fx.Provide(services.NewSousProjetService),
	fx.Provide(controllers.NewSousProjetController),
	fx.Invoke(RegisterSousProjetsRoutes),
)

func RegisterSousProjetsRoutes(r *gin.Engine, ctrl *controllers.SousProjetController) {
	ctrl.Register(r.Group("/api/v1/sous-projets"))
}
