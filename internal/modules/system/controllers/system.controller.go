package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/infrastructure/database/seeds"
	"gestion-projets-core/internal/modules/system/dto"
	"gestion-projets-core/internal/modules/system/services"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/response"
)

type SystemController struct {
	service *services.SystemService
}

func NewSystemController(service *services.SystemService) *SystemController {
	return &SystemController{
		service: service,
	}
}

// GetSystemInfo - GET /api/v1/system/info
func (c *SystemController) GetSystemInfo(ctx *gin.Context) {
	systemInfo, err := c.service.GetSystemInfo(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StandardAPIResponse{
		Success: true,
		Data:    systemInfo,
		Alertes: c.service.GenerateAlertes(systemInfo),
	})
}

// SynchronizeOffline - POST /api/v1/system/offline/synchronised?overwrite=true
// Le corps est l'export localStorage de la console
func (c *SystemController) SynchronizeOffline(ctx *gin.Context) {
	var dump seeds.Dump
	if err := ctx.ShouldBindJSON(&dump); err != nil {
		response.Error(ctx, apperror.Validation("Données invalides", map[string]string{"body": err.Error()}))
		return
	}

	overwrite, _ := strconv.ParseBool(ctx.Query("overwrite"))
	report, err := c.service.SynchronizeOffline(ctx.Request.Context(), dump, overwrite)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StandardAPIResponse{
		Success: true,
		Message: "Import terminé",
		Data:    report,
	})
}
