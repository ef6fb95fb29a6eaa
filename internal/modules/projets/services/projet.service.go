package services

import (
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type ProjetService struct {
	*resource.Service[models.Projet]
}

func NewProjetService(src *datasource.Source) (*ProjetService, error) {
	repo, err := datasource.Resolve[models.Projet](src, datasource.Projets)
	if err != nil {
		return nil, err
	}
	return &ProjetService{
		Service: resource.NewService(repo, resource.Options[models.Projet]{
			NotFound: "Projet non trouvé",
			PageSize: listing.DefaultPageSize,
			Check:    checkProjet,
		}),
	}, nil
}

func checkProjet(p models.Projet) map[string]string {
	champs := map[string]string{}
	if p.Budget.Total() < 0 {
		champs["budget"] = "Le budget ne peut pas être négatif"
	}
	if debut, ok := listing.ParseDate(p.DateDebut); ok {
		if fin, ok := listing.ParseDate(p.DateFin); ok && fin.Before(debut) {
			champs["date_fin"] = "La date de fin doit suivre la date de début"
		}
	}
	return champs
}
