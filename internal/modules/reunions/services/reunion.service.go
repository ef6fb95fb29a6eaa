package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/ident"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

// ReunionService lit les réunions du backend en tenant compte des traces locales
// laissées par l'ancienne console: les identifiants listés sous deletedReunions
// sont masqués et une clé reunion_{id} remplace la version du backend.
// Une écriture refusée par le backend est renvoyée telle quelle, sans copie locale.
type ReunionService struct {
	*resource.Service[models.Reunion]
	storage localstore.LocalStorage
	log     *zap.Logger
}

func NewReunionService(src *datasource.Source, storage localstore.LocalStorage, log *zap.Logger) (*ReunionService, error) {
	repo, err := datasource.Resolve[models.Reunion](src, datasource.Reunions)
	if err != nil {
		return nil, err
	}
	return &ReunionService{
		Service: resource.NewService(repo, resource.Options[models.Reunion]{
			NotFound: "Réunion non trouvée",
			PageSize: listing.ReunionPageSize,
		}),
		storage: storage,
		log:     log.Named("reunions"),
	}, nil
}

func (s *ReunionService) List(ctx context.Context, q listing.Query) (listing.Page[models.Reunion], error) {
	items, err := s.All(ctx)
	if err != nil {
		return listing.Page[models.Reunion]{}, err
	}

	deleted, err := s.tombstones(ctx)
	if err != nil {
		return listing.Page[models.Reunion]{}, err
	}

	visible := make([]models.Reunion, 0, len(items))
	for _, r := range items {
		if _, gone := deleted[r.ID.String()]; gone {
			continue
		}
		if visible, err = s.appendOverridden(ctx, visible, r); err != nil {
			return listing.Page[models.Reunion]{}, err
		}
	}
	return s.Page(visible, q), nil
}

func (s *ReunionService) Get(ctx context.Context, id string) (models.Reunion, error) {
	deleted, err := s.tombstones(ctx)
	if err != nil {
		return models.Reunion{}, err
	}
	if _, gone := deleted[id]; gone {
		return models.Reunion{}, apperror.NotFound("Réunion non trouvée")
	}

	r, err := s.Service.Get(ctx, id)
	if err != nil {
		return r, err
	}
	out, err := s.appendOverridden(ctx, nil, r)
	if err != nil {
		return r, err
	}
	return out[0], nil
}

// Update une modification acceptée rend obsolète la version locale.
// Une réunion masquée par deletedReunions reste introuvable.
func (s *ReunionService) Update(ctx context.Context, id string, r models.Reunion) (models.Reunion, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return r, err
	}
	updated, err := s.Service.Update(ctx, id, r)
	if err != nil {
		return updated, err
	}
	s.dropOverride(ctx, id)
	return updated, nil
}

func (s *ReunionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Service.Delete(ctx, id); err != nil {
		return err
	}
	s.dropOverride(ctx, id)
	return nil
}

func (s *ReunionService) tombstones(ctx context.Context) (map[string]struct{}, error) {
	raw, err := s.storage.GetItem(ctx, localstore.DeletedReunions)
	if errors.Is(err, localstore.ErrNoItem) || raw == "" {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture %s: %w", localstore.DeletedReunions, err)
	}

	var ids []ident.ID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Warn("liste des réunions supprimées illisible, ignorée", zap.Error(err))
		return map[string]struct{}{}, nil
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id.String()] = struct{}{}
	}
	return out, nil
}

func (s *ReunionService) appendOverridden(ctx context.Context, out []models.Reunion, r models.Reunion) ([]models.Reunion, error) {
	key := localstore.ReunionOverride(r.ID.String())
	raw, err := s.storage.GetItem(ctx, key)
	if errors.Is(err, localstore.ErrNoItem) {
		return append(out, r), nil
	}
	if err != nil {
		return out, fmt.Errorf("lecture %s: %w", key, err)
	}

	var local models.Reunion
	if err := json.Unmarshal([]byte(raw), &local); err != nil {
		s.log.Warn("réunion locale illisible, version du backend conservée",
			zap.String("key", key), zap.Error(err))
		return append(out, r), nil
	}
	return append(out, local.WithID(r.ID)), nil
}

func (s *ReunionService) dropOverride(ctx context.Context, id string) {
	if err := s.storage.RemoveItem(ctx, localstore.ReunionOverride(id)); err != nil {
		s.log.Warn("suppression de la réunion locale impossible", zap.String("id", id), zap.Error(err))
	}
}
