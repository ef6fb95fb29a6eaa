package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"gestion-projets-core/internal/app"
	"gestion-projets-core/internal/infrastructure/upstream"
	factures "gestion-projets-core/internal/modules/factures/services"
	incidents "gestion-projets-core/internal/modules/incidents/services"
	maitresouvrage "gestion-projets-core/internal/modules/maitres-ouvrage/services"
	marches "gestion-projets-core/internal/modules/marches/services"
	projets "gestion-projets-core/internal/modules/projets/services"
	reunions "gestion-projets-core/internal/modules/reunions/services"
	sousprojets "gestion-projets-core/internal/modules/sous-projets/services"
	users "gestion-projets-core/internal/modules/users/services"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/localstore"
)

// lister renvoie une page d'une entité
type lister func(ctx context.Context, q listing.Query) (interface{}, error)

// listers un constructeur de service et son adaptateur par entité
var listers = map[string]fx.Option{
	"projets": fx.Provide(projets.NewProjetService, func(s *projets.ProjetService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"sous-projets": fx.Provide(sousprojets.NewSousProjetService, func(s *sousprojets.SousProjetService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"incidents": fx.Provide(incidents.NewIncidentService, func(s *incidents.IncidentService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"factures": fx.Provide(factures.NewFactureService, func(s *factures.FactureService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"marches": fx.Provide(marches.NewMarcheService, func(s *marches.MarcheService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"maitres-ouvrage": fx.Provide(maitresouvrage.NewMaitreOuvrageService, func(s *maitresouvrage.MaitreOuvrageService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
	"users": fx.Provide(users.NewUserService, func(s *users.UserService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) {
			page, err := s.List(ctx, q)
			for i := range page.Items {
				page.Items[i] = page.Items[i].Public()
			}
			return page, err
		}
	}),
	"reunions": fx.Provide(reunions.NewReunionService, func(s *reunions.ReunionService) lister {
		return func(ctx context.Context, q listing.Query) (interface{}, error) { return s.List(ctx, q) }
	}),
}

var listQuery listing.Query

// listCmd affiche une page d'entités, lue depuis la source configurée
var listCmd = &cobra.Command{
	Use:   "list [entité]",
	Short: "Affiche une page d'entités en JSON",
	Long: `Lit une entité depuis sa source (SOURCE_<ENTITE>: upstream ou local) et affiche
la page demandée, filtrée par --search.

Le jeton "token" d'un export importé, s'il existe, est transmis au backend.

Entités: ` + strings.Join(entityNames(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: entityNames(),
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVar(&listQuery.Search, "search", "", "filtre texte")
	listCmd.Flags().IntVar(&listQuery.Page, "page", 1, "numéro de page")
}

func entityNames() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runList(cmd *cobra.Command, args []string) error {
	provide, ok := listers[args[0]]
	if !ok {
		return fmt.Errorf("entité inconnue %q (attendu: %s)", args[0], strings.Join(entityNames(), ", "))
	}

	var (
		list    lister
		storage localstore.LocalStorage
	)
	application := fx.New(
		app.CoreModule(cfg),
		provide,
		fx.NopLogger,
		fx.Populate(&list, &storage),
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

	if token := importedToken(ctx, storage); token != "" {
		ctx = upstream.WithToken(ctx, token)
	}

	page, err := list(ctx, listQuery)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// importedToken lit la clé token d'un export de la console, rangée telle quelle ou sérialisée en JSON
func importedToken(ctx context.Context, storage localstore.LocalStorage) string {
	token, err := storage.GetItem(ctx, localstore.Token)
	if err != nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(token), `"`)
}
