package services

import (
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type MaitreOuvrageService struct {
	*resource.Service[models.MaitreOuvrage]
}

func NewMaitreOuvrageService(src *datasource.Source) (*MaitreOuvrageService, error) {
	repo, err := datasource.Resolve[models.MaitreOuvrage](src, datasource.MaitresOuvrage)
	if err != nil {
		return nil, err
	}
	return &MaitreOuvrageService{
		Service: resource.NewService(repo, resource.Options[models.MaitreOuvrage]{
			NotFound: "Maître d'ouvrage non trouvé",
		}),
	}, nil
}
