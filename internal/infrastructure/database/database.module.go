// Package database choisit le stockage local selon STORE_DRIVER.
package database

import (
	"context"

	"go.uber.org/fx"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/database/mongodb"
	"gestion-projets-core/internal/infrastructure/database/postgres"
	"gestion-projets-core/internal/infrastructure/database/redis"
	"gestion-projets-core/internal/infrastructure/database/seeds"
	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/store"
)

// SchemaManager prépare tables ou index du backend avant le premier accès
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}

type noSchema struct{}

func (noSchema) EnsureSchema(context.Context) error { return nil }

// Module fournit store.Documents, localstore.LocalStorage et SchemaManager pour le pilote donné
func Module(driver string) fx.Option {
	return fx.Options(
		backend(driver),
		fx.Provide(seeds.NewSeedingService),
	)
}

func backend(driver string) fx.Option {
	switch driver {
	case config.DriverRedis:
		return fx.Options(
			redis.Module,
			fx.Provide(
				func(s *redis.LocalStorage) localstore.LocalStorage { return s },
				newArrayDocuments,
				func() SchemaManager { return noSchema{} },
			),
		)
	case config.DriverPostgres:
		return fx.Options(
			postgres.Module,
			fx.Provide(
				func(s *postgres.DocumentStore) store.Documents { return s },
				func(s *postgres.DocumentStore) SchemaManager { return s },
				newDocumentStorage,
			),
		)
	case config.DriverMongoDB:
		return fx.Options(
			mongodb.Module,
			fx.Provide(
				func(s *mongodb.DocumentStore) store.Documents { return s },
				func(s *mongodb.DocumentStore) SchemaManager { return s },
				newDocumentStorage,
			),
		)
	default:
		return fx.Provide(
			func() localstore.LocalStorage { return localstore.NewMemoryStorage() },
			newArrayDocuments,
			func() SchemaManager { return noSchema{} },
		)
	}
}

func newArrayDocuments(storage localstore.LocalStorage) store.Documents {
	return localstore.NewArrayDocuments(storage)
}

func newDocumentStorage(docs store.Documents) localstore.LocalStorage {
	return localstore.NewDocumentStorage(docs)
}
