package controllers

import (
	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/modules/dashboard/services"
	"gestion-projets-core/internal/shared/response"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// GetDashboard - GET /api/v1/dashboard/:role
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	env, err := c.service.Get(ctx.Request.Context(), ctx.Param("role"))
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, env.Message, env.Data)
}
