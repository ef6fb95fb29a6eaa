package mongodb

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
)

func NewMongoClient(cfg *config.Config) (*Client, error) {
	return NewClient(cfg.GetMongoDB())
}

var Module = fx.Options(
	fx.Provide(NewMongoClient),
	fx.Provide(NewDocumentStore),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				return err
			}

			log.Info("MongoDB connecté et opérationnel")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
