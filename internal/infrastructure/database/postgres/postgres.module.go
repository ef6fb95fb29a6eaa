package postgres

import (
	"context"
	"time"

	"go.uber.org/fx"

	"gestion-projets-core/internal/app/config"
)

func NewPostgresClient(cfg *config.Config) (*Client, error) {
	return NewClient(cfg.GetDatabase())
}

var Module = fx.Options(
	fx.Provide(NewPostgresClient),
	fx.Provide(NewTransactionManager),
	fx.Provide(NewDocumentStore),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			return client.HealthCheck(timeoutCtx)
		},
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})
}
