package controllers

import (
	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/modules/incidents/services"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
	"gestion-projets-core/internal/shared/response"
)

type IncidentController struct {
	*resource.Controller[models.Incident]
	suivis    *services.SuiviService
	validator *response.Validator
}

func NewIncidentController(incidents *services.IncidentService, suivis *services.SuiviService) *IncidentController {
	return &IncidentController{
		Controller: resource.NewController[models.Incident](incidents, resource.Labels{
			Created: "Incident déclaré avec succès",
			Updated: "Incident modifié avec succès",
			Deleted: "Incident supprimé avec succès",
		}),
		suivis:    suivis,
		validator: response.NewValidator(),
	}
}

// ListSuivis - GET /api/v1/incidents/:id/suivis
func (c *IncidentController) ListSuivis(ctx *gin.Context) {
	var q listing.Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.ListError(ctx, c.validator.QueryError(err))
		return
	}

	page, err := c.suivis.ListByIncident(ctx.Request.Context(), ctx.Param("id"), q)
	if err != nil {
		response.ListError(ctx, err)
		return
	}
	response.OK(ctx, "", page)
}

// AddSuivi - POST /api/v1/incidents/:id/suivis
func (c *IncidentController) AddSuivi(ctx *gin.Context) {
	var suivi models.Suivi
	if err := c.validator.Bind(ctx, &suivi); err != nil {
		response.Error(ctx, err)
		return
	}

	created, err := c.suivis.Add(ctx.Request.Context(), ctx.Param("id"), suivi)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.Created(ctx, "Suivi ajouté avec succès", created)
}

// RemoveSuivi - DELETE /api/v1/incidents/:id/suivis/:suiviId
func (c *IncidentController) RemoveSuivi(ctx *gin.Context) {
	if err := c.suivis.Remove(ctx.Request.Context(), ctx.Param("id"), ctx.Param("suiviId")); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, "Suivi supprimé avec succès", nil)
}
