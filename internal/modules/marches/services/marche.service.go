package services

import (
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type MarcheService struct {
	*resource.Service[models.Marche]
}

func NewMarcheService(src *datasource.Source) (*MarcheService, error) {
	repo, err := datasource.Resolve[models.Marche](src, datasource.Marches)
	if err != nil {
		return nil, err
	}
	return &MarcheService{
		Service: resource.NewService(repo, resource.Options[models.Marche]{NotFound: "Marché non trouvé"}),
	}, nil
}
