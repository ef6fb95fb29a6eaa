package controllers

import (
	"gestion-projets-core/internal/modules/maitres-ouvrage/services"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type MaitreOuvrageController struct {
	*resource.Controller[models.MaitreOuvrage]
}

func NewMaitreOuvrageController(service *services.MaitreOuvrageService) *MaitreOuvrageController {
	return &MaitreOuvrageController{
		Controller: resource.NewController[models.MaitreOuvrage](service, resource.Labels{
			Created: "Maître d'ouvrage créé avec succès",
			Updated: "Maître d'ouvrage modifié avec succès",
			Deleted: "Maître d'ouvrage supprimé avec succès",
		}),
	}
}
