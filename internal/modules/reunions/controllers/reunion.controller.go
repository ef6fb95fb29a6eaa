package controllers

import (
	"gestion-projets-core/internal/modules/reunions/services"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type ReunionController struct {
	*resource.Controller[models.Reunion]
}

func NewReunionController(service *services.ReunionService) *ReunionController {
	return &ReunionController{
		Controller: resource.NewController[models.Reunion](service, resource.Labels{
			Created: "Réunion planifiée avec succès",
			Updated: "Réunion modifiée avec succès",
			Deleted: "Réunion supprimée avec succès",
		}),
	}
}
