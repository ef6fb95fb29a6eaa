package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
)

const shutdownTimeout = 30 * time.Second

// Application serveur HTTP de l'API, configuré uniquement par variables d'environnement
type Application struct {
	config *config.Config
	router *gin.Engine
	server *http.Server
	log    *zap.Logger
}

// NewApplication crée une nouvelle instance de l'application
func NewApplication(cfg *config.Config, router *gin.Engine, log *zap.Logger) *Application {
	return &Application{
		config: cfg,
		router: router,
		log:    log.Named("server"),
	}
}

// Start démarre l'application avec lifecycle Fx
func (a *Application) Start(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverConfig := a.config.GetServer()
			addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)

			a.server = &http.Server{
				Addr:         addr,
				Handler:      a.router,
				ReadTimeout:  serverConfig.ReadTimeout,
				WriteTimeout: serverConfig.WriteTimeout,
			}

			// Démarrage serveur en goroutine
			go func() {
				a.log.Info("démarrage serveur HTTP", zap.String("addr", addr))
				if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.log.Error("échec démarrage serveur", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			a.log.Info("serveur HTTP initialisé",
				zap.String("environment", a.config.Environment),
				zap.String("store_driver", a.config.Store.Driver))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			a.log.Info("arrêt serveur HTTP")

			// Timeout pour arrêt graceful
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			if err := a.server.Shutdown(shutdownCtx); err != nil {
				a.log.Warn("arrêt forcé", zap.Error(err))
				return err
			}

			a.log.Info("serveur arrêté proprement")
			return nil
		},
	})
}

// GetConfig retourne la configuration pour accès externe
func (a *Application) GetConfig() *config.Config {
	return a.config
}
