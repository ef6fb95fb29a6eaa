package app

import (
	"go.uber.org/fx"

	"gestion-projets-core/internal/app/bootstrap"
	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/database"
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/infrastructure/logger"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/modules/auth"
	"gestion-projets-core/internal/modules/dashboard"
	"gestion-projets-core/internal/modules/factures"
	"gestion-projets-core/internal/modules/incidents"
	maitresouvrage "gestion-projets-core/internal/modules/maitres-ouvrage"
	"gestion-projets-core/internal/modules/marches"
	"gestion-projets-core/internal/modules/projets"
	"gestion-projets-core/internal/modules/reunions"
	sousprojets "gestion-projets-core/internal/modules/sous-projets"
	"gestion-projets-core/internal/modules/system"
	"gestion-projets-core/internal/modules/users"
	"gestion-projets-core/internal/shared/middleware"
)

// CoreModule configuration, logger, backend REST, stockage local et sources de données.
// Partagé par le serveur HTTP et les commandes de la console.
func CoreModule(cfg *config.Config) fx.Option {
	return fx.Options(
		// Configuration (doit être fournie en premier)
		fx.Supply(cfg),

		// Infrastructure
		logger.Module,
		upstream.Module,
		database.Module(cfg.Store.Driver),
		fx.Provide(datasource.NewSource),
	)
}

// AppModule serveur HTTP complet
func AppModule(cfg *config.Config) fx.Option {
	return fx.Options(
		CoreModule(cfg),

		// Middlewares partagés (après infrastructure, avant modules métier)
		middleware.Module,

		// Modules métier
		auth.Module,
		projets.Module,
		sousprojets.Module,
		incidents.Module,
		factures.Module,
		marches.Module,
		maitresouvrage.Module,
		users.Module,
		reunions.Module,
		dashboard.Module,
		system.Module,

		// Bootstrap System - Providers
		fx.Provide(func(c *upstream.Client) bootstrap.Pinger { return c }),
		fx.Provide(bootstrap.NewSeedingManager),
		fx.Provide(bootstrap.NewBootstrapSystem),

		// Router
		fx.Provide(NewRouter),

		// Application
		fx.Provide(NewApplication),

		// Lifecycle management
		fx.Invoke(bootstrap.RegisterBootstrapLifecycle),
		fx.Invoke((*Application).Start),
	)
}
