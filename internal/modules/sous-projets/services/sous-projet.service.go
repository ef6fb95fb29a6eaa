package services

import (
	"context"

	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type SousProjetService struct {
	*resource.Service[models.SousProjet]
}

func NewSousProjetService(src *datasource.Source) (*SousProjetService, error) {
	repo, err := datasource.Resolve[models.SousProjet](src, datasource.SousProjets)
	if err != nil {
		return nil, err
	}
	return &SousProjetService{
		Service: resource.NewService(repo, resource.Options[models.SousProjet]{
			NotFound: "Sous-projet non trouvé",
			PageSize: listing.DefaultPageSize,
		}),
	}, nil
}

// ListByProjet sous-projets rattachés à un projet
func (s *SousProjetService) ListByProjet(ctx context.Context, projetID string, q listing.Query) (listing.Page[models.SousProjet], error) {
	return s.ListWhere(ctx, q, func(sp models.SousProjet) bool {
		return sp.ProjetID.String() == projetID
	})
}
