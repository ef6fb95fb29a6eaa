package users

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"gestion-projets-core/internal/modules/users/controllers"
	"gestion-projets-core/internal/modules/users/services"
)

var Module = fx.Options(
	fx.Provide(services.NewUserService),
	fx.Provide(controllers.NewUserController),
	fx.Invoke(RegisterUsersRoutes),
)

func RegisterUsersRoutes(r *gin.Engine, ctrl *controllers.UserController) {
	api := r.Group("/api/v1/users")
	ctrl.Register(api)
	api.PUT("/:id/fcm-token", ctrl.UpdateFCMToken)
}
