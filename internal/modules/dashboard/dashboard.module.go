package dashboard

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/dashboard/controllers"
	"gestion-projets-core/internal/modules/dashboard/services"
)

var Module = fx.Options(
	fx.Provide(services.NewDashboardService),
	fx.Provide(controllers.NewDashboardController),
	fx.Invoke(RegisterDashboardRoutes),
)

func RegisterDashboardRoutes(r *gin.Engine, ctrl *controllers.DashboardController) {
	r.GET("/api/v1/dashboard/:role", ctrl.GetDashboard)
}
