package middleware

import (
	"context"
	"time"

	"go.uber.org/fx"

	"gestion-projets-core/internal/shared/middleware/auth"
	"gestion-projets-core/internal/shared/middleware/security"
)

const rateLimitCleanupInterval = time.Minute

// Module regroupe tous les providers des middlewares
var Module = fx.Options(
	fx.Provide(auth.NewTokenMiddleware),
	fx.Provide(security.NewRateLimiter),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, limiter *security.RateLimiter) {
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			limiter.StartCleanup(rateLimitCleanupInterval, stop)
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			return nil
		},
	})
}
