package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"gestion-projets-core/internal/app"
	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/logger"
)

var cfg *config.Config

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "API de la console de gestion de projets",
	Long: `Sert l'API REST de la console de gestion de projets et administre son stockage local.

La configuration est lue depuis l'environnement (et un fichier .env optionnel).
Sans sous-commande, le serveur HTTP est lancé.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewConfig()
		if err != nil {
			return fmt.Errorf("configuration invalide: %w", err)
		}
		return nil
	},
	RunE: runServe,
}

// serveCmd lance le serveur HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Lance le serveur HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, importCmd, listCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fx.New(
		app.AppModule(cfg),
		fx.WithLogger(logger.FxLogger),
	).Run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
