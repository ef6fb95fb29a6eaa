package incidents

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/incidents/controllers"
	"gestion-projets-core/internal/modules/incidents/services"
)

// Module incidents et suivis d'incident
var Module = fx.Options(
	fx.Provide(services.NewIncidentService),
	fx.Provide(services.NewSuiviService),
	fx.Provide(controllers.NewIncidentController),
	fx.Invoke(RegisterIncidentsRoutes),
)

func RegisterIncidentsRoutes(r *gin.Engine, ctrl *controllers.IncidentController) {
	api := r.Group("/api/v1/incidents")
	ctrl.Register(api)
	{
		api.GET("/:id/suivis", ctrl.ListSuivis)
		api.POST("/:id/suivis", ctrl.AddSuivi)
		api.DELETE("/:id/suivis/:suiviId", ctrl.RemoveSuivi)
	}
}
