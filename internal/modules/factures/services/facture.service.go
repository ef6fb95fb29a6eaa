package services

import (
	"context"

	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type FactureService struct {
	*resource.Service[models.Facture]
}

// NewFactureService les montants sont contrôlés à chaque écriture (brut, net, TVA, TTC)
func NewFactureService(src *datasource.Source) (*FactureService, error) {
	repo, err := datasource.Resolve[models.Facture](src, datasource.Factures)
	if err != nil {
		return nil, err
	}
	return &FactureService{
		Service: resource.NewService(repo, resource.Options[models.Facture]{
			NotFound: "Facture non trouvée",
			PageSize: listing.DefaultPageSize,
			Check:    models.Facture.Incoherences,
		}),
	}, nil
}

// ListByProjet factures d'un projet, utilisé par la fiche projet
func (s *FactureService) ListByProjet(ctx context.Context, projetID string, q listing.Query) (listing.Page[models.Facture], error) {
	return s.ListWhere(ctx, q, func(f models.Facture) bool {
		return f.ProjetID.String() == projetID
	})
}
