package redis

import (
	"context"
	"time"

	"go.uber.org/fx"

	"gestion-projets-core/internal/app/config"
)

func NewRedisClient(cfg *config.Config) (*Client, error) {
	redisCfg := cfg.GetRedis()
	return NewClient(&RedisConfig{
		Host:        redisCfg.Host,
		Port:        redisCfg.Port,
		Password:    redisCfg.Password,
		Database:    redisCfg.Database,
		MaxRetries:  redisCfg.MaxRetries,
		PoolSize:    redisCfg.PoolSize,
		PoolTimeout: redisCfg.PoolTimeout,
	}, NewRedisKeyGenerator(cfg.Environment))
}

var Module = fx.Options(
	fx.Provide(NewRedisClient),
	fx.Provide(NewLocalStorage),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				return err
			}

			return client.HealthCheck(timeoutCtx)
		},
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})
}
