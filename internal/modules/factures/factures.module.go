package factures

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/factures/controllers"
	"gestion-projets-core/internal/modules/factures/services"
)

var Module = fx.Options(
	fx.Provide(services.NewFactureService),
	fx.Provide(controllers.NewFactureController),
	fx.Invoke(RegisterFacturesRoutes),
)

func RegisterFacturesRoutes(r *gin.Engine, ctrl *controllers.FactureController) {
	ctrl.Register(r.Group("/api/v1/factures"))
	r.GET("/api/v1/projets/:id/factures", ctrl.ListByProjet)
}
