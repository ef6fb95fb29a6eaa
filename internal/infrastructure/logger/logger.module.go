package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
)

var Module = fx.Options(
	fx.Provide(NewFromConfig),
	fx.Provide(NewMiddleware),
	fx.Invoke(RegisterLifecycle),
)

// NewFromConfig construit le logger applicatif selon LOG_LEVEL
func NewFromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.Logging.Level, cfg.IsDevelopment())
}

// FxLogger branche les événements Fx sur zap
func FxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}

func RegisterLifecycle(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
}
