package reunions

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/reunions/controllers"
	"gestion-projets-core/internal/modules/reunions/services"
)

var Module = fx.Options(
	fx.Provide(services.NewReunionService),
	fx.Provide(controllers.NewReunionController),
	fx.Invoke(RegisterReunionsRoutes),
)

func RegisterReunionsRoutes(r *gin.Engine, ctrl *controllers.ReunionController) {
	ctrl.Register(r.Group("/api/v1/reunions"))
}
