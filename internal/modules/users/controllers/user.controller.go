package controllers

import (
	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/modules/users/dto"
	"gestion-projets-core/internal/modules/users/services"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
	"gestion-projets-core/internal/shared/response"
)

type UserController struct {
	*resource.Controller[models.User]
	users     *services.UserService
	validator *response.Validator
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{
		Controller: resource.NewController[models.User](service, resource.Labels{
			Created: "Utilisateur créé avec succès",
			Updated: "Utilisateur modifié avec succès",
			Deleted: "Utilisateur supprimé avec succès",
		}).WithPresenter(models.User.Public),
		users:     service,
		validator: response.NewValidator(),
	}
}

// UpdateFCMToken - PUT /api/v1/users/:id/fcm-token
func (c *UserController) UpdateFCMToken(ctx *gin.Context) {
	var req dto.UpdateFCMTokenRequest
	if err := c.validator.Bind(ctx, &req); err != nil {
		response.Error(ctx, err)
		return
	}

	user, err := c.users.UpdateFCMToken(ctx.Request.Context(), ctx.Param("id"), req.FCMToken)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, "Jeton de notification mis à jour", user.Public())
}
