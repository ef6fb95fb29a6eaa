package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/database/seeds"
)

// SeedingManager importe l'export localStorage de LOCAL_STORAGE_SEED_PATH
// quand le stockage local est encore vide
type SeedingManager struct {
	seedPath    string
	seedService seeds.SeedingService
	log         *zap.Logger
}

func NewSeedingManager(seedService seeds.SeedingService, cfg *config.Config, log *zap.Logger) *SeedingManager {
	return &SeedingManager{
		seedPath:    cfg.Store.SeedPath,
		seedService: seedService,
		log:         log.Named("seeding"),
	}
}

// Run vérifie l'état des données puis applique l'import si nécessaire
func (sm *SeedingManager) Run(ctx context.Context) error {
	if sm.seedPath == "" {
		sm.log.Debug("aucun fichier d'import configuré")
		return nil
	}

	status, err := sm.CheckSeedDataExists(ctx)
	if err != nil {
		return err
	}
	return sm.ApplySeeding(ctx, status)
}

// CheckSeedDataExists vérifie quelles données existent déjà
func (sm *SeedingManager) CheckSeedDataExists(ctx context.Context) (*seeds.SeedDataStatus, error) {
	status, err := sm.seedService.CheckSeedDataExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("erreur vérification données seeding: %w", err)
	}

	sm.log.Info("état des données locales",
		zap.Bool("projects", status.ProjectsExist),
		zap.Strings("missing", status.GetMissingSeeds()),
	)
	return status, nil
}

// ApplySeeding importe le fichier sans écraser les clés déjà présentes
func (sm *SeedingManager) ApplySeeding(ctx context.Context, status *seeds.SeedDataStatus) error {
	if status.AllDataExists {
		sm.log.Info("données locales déjà présentes, import ignoré")
		return nil
	}

	dump, err := sm.seedService.LoadDumpFromFile(sm.seedPath)
	if err != nil {
		return err
	}

	report, err := sm.seedService.Import(ctx, dump, seeds.ImportOptions{})
	if err != nil {
		return fmt.Errorf("import %s: %w", sm.seedPath, err)
	}

	sm.log.Info("import initial terminé",
		zap.String("path", sm.seedPath),
		zap.Strings("imported", report.Imported),
		zap.Strings("skipped", report.Skipped),
	)
	return nil
}
