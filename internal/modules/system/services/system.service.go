package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/database/seeds"
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/modules/system/dto"
	"gestion-projets-core/internal/shared/apperror"
)

// Version de l'API, remplacée au build par -ldflags
var Version = "0.1.0"

type SystemService struct {
	config  *config.Config
	backend *upstream.Client
	seeds   seeds.SeedingService
	log     *zap.Logger
}

func NewSystemService(cfg *config.Config, backend *upstream.Client, seedService seeds.SeedingService, log *zap.Logger) *SystemService {
	return &SystemService{
		config:  cfg,
		backend: backend,
		seeds:   seedService,
		log:     log.Named("system"),
	}
}

// GetSystemInfo décrit l'environnement, les sources par entité et l'état des stockages
func (s *SystemService) GetSystemInfo(ctx context.Context) (*dto.SystemInfoResponse, error) {
	info := &dto.SystemInfoResponse{
		Environment: s.config.Environment,
		Version:     Version,
		Backend:     dto.BackendInfoDTO{BaseURL: s.config.Upstream.BaseURL, Reachable: true},
		Storage:     dto.StorageInfoDTO{Driver: s.config.Store.Driver, SeedPath: s.config.Store.SeedPath},
		Sources:     make(map[string]string, len(datasource.All)),
	}

	for _, e := range datasource.All {
		info.Sources[e.Name] = s.config.SourceOf(e.Name)
	}

	if err := s.backend.Ping(ctx); err != nil {
		info.Backend.Reachable = false
		info.Backend.Error = err.Error()
	}

	status, err := s.seeds.CheckSeedDataExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("erreur lecture stockage local: %w", err)
	}
	info.Storage.Seed = status

	return info, nil
}

// GenerateAlertes signale un backend injoignable et un stockage local vide
func (s *SystemService) GenerateAlertes(info *dto.SystemInfoResponse) []dto.AlerteDTO {
	var alertes []dto.AlerteDTO

	if !info.Backend.Reachable {
		alertes = append(alertes, dto.AlerteDTO{
			Type:    "warning",
			Code:    "BACKEND_UNREACHABLE",
			Message: "Le backend REST ne répond pas",
			Details: map[string]interface{}{"error": info.Backend.Error},
		})
	}

	if info.Storage.Seed != nil && !info.Storage.Seed.AllDataExists {
		alertes = append(alertes, dto.AlerteDTO{
			Type:    "info",
			Code:    "LOCAL_STORAGE_EMPTY",
			Message: "Aucune donnée locale importée",
			Details: map[string]interface{}{"missing": info.Storage.Seed.GetMissingSeeds()},
		})
	}

	return alertes
}

// SynchronizeOffline importe un export localStorage envoyé par la console
func (s *SystemService) SynchronizeOffline(ctx context.Context, dump seeds.Dump, overwrite bool) (*seeds.ImportReport, error) {
	if len(dump) == 0 {
		return nil, apperror.Validation("Export vide", map[string]string{"dump": "au moins une clé est requise"})
	}

	report, err := s.seeds.Import(ctx, dump, seeds.ImportOptions{Overwrite: overwrite})
	if err != nil {
		var seedErr *seeds.SeedingError
		if errors.As(err, &seedErr) && seedErr.Type == seeds.ErrorTypeInvalidCollection {
			return nil, apperror.Validation(seedErr.Message, map[string]string{"dump": seedErr.Message})
		}
		return report, err
	}

	s.log.Info("export localStorage importé",
		zap.Int("imported", len(report.Imported)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Bool("overwrite", overwrite))
	return report, nil
}
