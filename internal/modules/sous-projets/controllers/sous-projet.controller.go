package controllers

import (
	"gestion-projets-core/internal/modules/sous-projets/services"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type SousProjetController struct {
	*resource.Controller[models.SousProjet]
}

func NewSousProjetController(service *services.SousProjetService) *SousProjetController {
	return &SousProjetController{
		Controller: resource.NewController[models.SousProjet](service, resource.Labels{
			Created: "Sous-projet créé avec succès",
			Updated: "Sous-projet modifié avec succès",
			Deleted: "Sous-projet supprimé avec succès",
		}),
	}
}
