package services

import (
	"context"
	"net/url"

	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/envelope"
	"gestion-projets-core/internal/shared/models"
)

type DashboardService struct {
	client *upstream.Client
}

func NewDashboardService(client *upstream.Client) *DashboardService {
	return &DashboardService{client: client}
}

// Get relaie /dashboard/{role} et renvoie l'enveloppe normalisée
func (s *DashboardService) Get(ctx context.Context, role string) (envelope.Envelope, error) {
	if !models.IsRole(role) {
		return envelope.Envelope{}, apperror.Validation("Rôle inconnu", map[string]string{
			"role": "Le rôle doit être admin, chef ou employee",
		})
	}

	resp, err := s.client.Get(ctx, "/dashboard/"+url.PathEscape(role), nil)
	if err != nil {
		return envelope.Envelope{}, err
	}
	if err := resp.Err(); err != nil {
		return envelope.Envelope{}, err
	}
	return resp.Envelope(), nil
}
