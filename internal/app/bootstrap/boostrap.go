package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gestion-projets-core/internal/infrastructure/database"
)

// Pinger backend REST joignable ou non
type Pinger interface {
	Ping(ctx context.Context) error
}

// BootstrapSystem orchestre le démarrage en 3 phases séquentielles:
// backend REST, schéma du stockage local puis import initial
type BootstrapSystem struct {
	backend        Pinger
	schema         database.SchemaManager
	seedingManager *SeedingManager
	log            *zap.Logger
	timeout        time.Duration
}

// BootstrapResult contient le résultat d'exécution du bootstrap
type BootstrapResult struct {
	Success        bool          `json:"success"`
	TotalDuration  time.Duration `json:"total_duration"`
	PhasesExecuted []PhaseResult `json:"phases_executed"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// PhaseResult contient le résultat d'une phase du bootstrap
type PhaseResult struct {
	Phase       string        `json:"phase"`
	Success     bool          `json:"success"`
	Duration    time.Duration `json:"duration"`
	Description string        `json:"description"`
	Error       string        `json:"error,omitempty"`
}

func NewBootstrapSystem(
	backend Pinger,
	schema database.SchemaManager,
	seedingManager *SeedingManager,
	log *zap.Logger,
) *BootstrapSystem {
	return &BootstrapSystem{
		backend:        backend,
		schema:         schema,
		seedingManager: seedingManager,
		log:            log.Named("bootstrap"),
		timeout:        2 * time.Minute,
	}
}

// Execute lance les 3 phases; seul le backend REST n'est pas bloquant
func (bs *BootstrapSystem) Execute(ctx context.Context) (*BootstrapResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, bs.timeout)
	defer cancel()

	bs.log.Info("démarrage du bootstrap", zap.Duration("timeout", bs.timeout))

	result := &BootstrapResult{
		Success:        true,
		PhasesExecuted: []PhaseResult{},
	}

	phases := []struct {
		name        string
		description string
		blocking    bool
		run         func(context.Context) error
	}{
		{"Phase 0: Backend REST", "Vérification du backend REST", false, bs.backend.Ping},
		{"Phase 1: Stockage local", "Création des tables ou index du stockage local", true, bs.schema.EnsureSchema},
		{"Phase 2: Import initial", "Import de l'export localStorage", true, bs.seedingManager.Run},
	}

	for i, phase := range phases {
		phaseResult := bs.executePhase(ctx, phase.name, phase.description, phase.run)
		result.PhasesExecuted = append(result.PhasesExecuted, phaseResult)
		if phaseResult.Success {
			continue
		}
		if !phase.blocking {
			bs.log.Warn("phase non bloquante en échec, démarrage poursuivi",
				zap.String("phase", phase.name), zap.String("error", phaseResult.Error))
			continue
		}

		result.Success = false
		result.ErrorMessage = fmt.Sprintf("Phase %d échouée: %s", i, phaseResult.Error)
		return bs.finalizeResult(result, startTime), fmt.Errorf("bootstrap failed at phase %d: %s", i, phaseResult.Error)
	}

	result = bs.finalizeResult(result, startTime)
	bs.log.Info("bootstrap terminé", zap.Duration("duration", result.TotalDuration))
	return result, nil
}

func (bs *BootstrapSystem) executePhase(ctx context.Context, phase, description string, run func(context.Context) error) PhaseResult {
	startTime := time.Now()
	bs.log.Info("démarrage phase", zap.String("phase", phase))

	err := run(ctx)
	duration := time.Since(startTime)

	if err != nil {
		bs.log.Error("phase échouée", zap.String("phase", phase), zap.Duration("duration", duration), zap.Error(err))
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: description,
			Error:       err.Error(),
		}
	}

	bs.log.Info("phase terminée", zap.String("phase", phase), zap.Duration("duration", duration))
	return PhaseResult{
		Phase:       phase,
		Success:     true,
		Duration:    duration,
		Description: description,
	}
}

// finalizeResult finalise le résultat avec la durée totale
func (bs *BootstrapSystem) finalizeResult(result *BootstrapResult, startTime time.Time) *BootstrapResult {
	result.TotalDuration = time.Since(startTime)
	return result
}

// SetTimeout configure un nouveau timeout (utile pour les tests)
func (bs *BootstrapSystem) SetTimeout(timeout time.Duration) {
	bs.timeout = timeout
}

// RegisterBootstrapLifecycle exécute le bootstrap avant le démarrage du serveur HTTP
func RegisterBootstrapLifecycle(lc fx.Lifecycle, bootstrap *BootstrapSystem) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := bootstrap.Execute(context.WithoutCancel(ctx)); err != nil {
				return fmt.Errorf("bootstrap system failed: %w", err)
			}
			return nil
		},
	})
}
