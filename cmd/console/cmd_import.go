package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"gestion-projets-core/internal/app"
	"gestion-projets-core/internal/infrastructure/database"
	"gestion-projets-core/internal/infrastructure/database/seeds"
)

var (
	importOverwrite bool
	importReset     bool
)

// importCmd range un export localStorage dans le stockage local configuré
var importCmd = &cobra.Command{
	Use:   "import [dump.json]",
	Short: "Importe un export localStorage de la console",
	Long: `Lit un export du localStorage du navigateur (objet clé vers valeur) et range
chaque clé dans le stockage local choisi par STORE_DRIVER.

Les clés déjà présentes sont conservées, sauf avec --overwrite.
--reset vide le stockage local avant l'import.

Exemple:
  console import sauvegarde.json --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "remplace les clés déjà présentes")
	importCmd.Flags().BoolVar(&importReset, "reset", false, "vide le stockage local avant l'import")
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		schema      database.SchemaManager
		seedService seeds.SeedingService
	)

	application := fx.New(
		app.CoreModule(cfg),
		fx.NopLogger,
		fx.Populate(&schema, &seedService),
	)
	if err := application.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := application.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = application.Stop(context.WithoutCancel(ctx)) }()

	if err := schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("préparation du stockage local: %w", err)
	}

	dump, err := seedService.LoadDumpFromFile(args[0])
	if err != nil {
		return err
	}

	report, err := seedService.Import(ctx, dump, seeds.ImportOptions{Overwrite: importOverwrite, Reset: importReset})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
