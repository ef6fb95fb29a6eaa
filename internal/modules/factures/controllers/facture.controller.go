package controllers

import (
	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/modules/factures/services"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
	"gestion-projets-core/internal/shared/response"
)

type FactureController struct {
	*resource.Controller[models.Facture]
	factures  *services.FactureService
	validator *response.Validator
}

func NewFactureController(service *services.FactureService) *FactureController {
	return &FactureController{
		Controller: resource.NewController[models.Facture](service, resource.Labels{
			Created: "Facture créée avec succès",
			Updated: "Facture modifiée avec succès",
			Deleted: "Facture supprimée avec succès",
		}),
		factures:  service,
		validator: response.NewValidator(),
	}
}

// ListByProjet - GET /api/v1/projets/:id/factures
func (c *FactureController) ListByProjet(ctx *gin.Context) {
	var q listing.Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.ListError(ctx, c.validator.QueryError(err))
		return
	}

	page, err := c.factures.ListByProjet(ctx.Request.Context(), ctx.Param("id"), q)
	if err != nil {
		response.ListError(ctx, err)
		return
	}
	response.OK(ctx, "", page)
}
