package controllers

import (
	"github.com/gin-gonic/gin"

	projets "gestion-projets-core/internal/modules/projets/services"
	sousprojets "gestion-projets-core/internal/modules/sous-projets/services"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
	"gestion-projets-core/internal/shared/response"
)

type ProjetController struct {
	*resource.Controller[models.Projet]
	projets     *projets.ProjetService
	sousProjets *sousprojets.SousProjetService
}

func NewProjetController(service *projets.ProjetService, sousProjets *sousprojets.SousProjetService) *ProjetController {
	return &ProjetController{
		Controller: resource.NewController[models.Projet](service, resource.Labels{
			Created: "Projet créé avec succès",
			Updated: "Projet modifié avec succès",
			Deleted: "Projet supprimé avec succès",
		}),
		projets:     service,
		sousProjets: sousProjets,
	}
}

// ListSousProjets - GET /api/v1/projets/:id/sous-projets
func (c *ProjetController) ListSousProjets(ctx *gin.Context) {
	var q listing.Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.ListError(ctx, response.NewValidator().QueryError(err))
		return
	}

	projet, err := c.projets.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.ListError(ctx, err)
		return
	}

	page, err := c.sousProjets.ListByProjet(ctx.Request.Context(), projet.ID.String(), q)
	if err != nil {
		response.ListError(ctx, err)
		return
	}
	response.OK(ctx, "", page)
}
