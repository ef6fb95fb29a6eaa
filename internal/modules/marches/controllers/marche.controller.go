package controllers

import (
	"gestion-projets-core/internal/modules/marches/services"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type MarcheController struct {
	*resource.Controller[models.Marche]
}

func NewMarcheController(service *services.MarcheService) *MarcheController {
	return &MarcheController{
		Controller: resource.NewController[models.Marche](service, resource.Labels{
			Created: "Marché créé avec succès",
			Updated: "Marché modifié avec succès",
			Deleted: "Marché supprimé avec succès",
		}),
	}
}
