package services

import (
	"context"
	"time"

	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

const suiviDateLayout = "2006-01-02T15:04:05"

// SuiviService gère les suivis rattachés à un incident (clé incidentFollowUps)
type SuiviService struct {
	suivis    *resource.Service[models.Suivi]
	incidents *IncidentService
	now       func() time.Time
}

func NewSuiviService(src *datasource.Source, incidents *IncidentService) (*SuiviService, error) {
	repo, err := datasource.Resolve[models.Suivi](src, datasource.Suivis)
	if err != nil {
		return nil, err
	}
	return &SuiviService{
		suivis: resource.NewService(repo, resource.Options[models.Suivi]{
			NotFound: "Suivi non trouvé",
			PageSize: listing.IncidentPageSize,
		}),
		incidents: incidents,
		now:       time.Now,
	}, nil
}

func (s *SuiviService) ListByIncident(ctx context.Context, incidentID string, q listing.Query) (listing.Page[models.Suivi], error) {
	incident, err := s.incidents.Get(ctx, incidentID)
	if err != nil {
		return listing.Page[models.Suivi]{}, err
	}
	return s.suivis.ListWhere(ctx, q, func(suivi models.Suivi) bool {
		return suivi.IncidentID.Equal(incident.ID)
	})
}

// Add rattache le suivi à l'incident; la date vaut maintenant si elle est absente
func (s *SuiviService) Add(ctx context.Context, incidentID string, suivi models.Suivi) (models.Suivi, error) {
	incident, err := s.incidents.Get(ctx, incidentID)
	if err != nil {
		return suivi, err
	}

	suivi.IncidentID = incident.ID
	if suivi.Date == "" {
		suivi.Date = s.now().Format(suiviDateLayout)
	} else if _, ok := listing.ParseDate(suivi.Date); !ok {
		return suivi, apperror.Validation("Erreur de validation", map[string]string{"date": "Date invalide"})
	}
	return s.suivis.Create(ctx, suivi)
}

// Remove refuse un suivi appartenant à un autre incident
func (s *SuiviService) Remove(ctx context.Context, incidentID, suiviID string) error {
	suivi, err := s.suivis.Get(ctx, suiviID)
	if err != nil {
		return err
	}
	if suivi.IncidentID.String() != incidentID {
		return apperror.NotFound("Suivi non trouvé")
	}
	return s.suivis.Delete(ctx, suiviID)
}
