package marches

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/marches/controllers"
	"gestion-projets-core/internal/modules/marches/services"
)

var Module = fx.Options(
	fx.Provide(services.NewMarcheService),
	fx.Provide(controllers.NewMarcheController),
	fx.Invoke(RegisterMarchesRoutes),
)

func RegisterMarchesRoutes(r *gin.Engine, ctrl *controllers.MarcheController) {
	ctrl.Register(r.Group("/api/v1/marches"))
}
