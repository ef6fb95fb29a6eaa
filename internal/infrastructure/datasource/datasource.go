// Package datasource choisit, entité par entité, entre le backend REST et le stockage local.
package datasource

import (
	"fmt"
	"strings"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/store"
)

// Entity relie une entité à sa collection REST et à sa clé locale
type Entity struct {
	Name     string
	Resource upstream.Resource
	LocalKey string
}

var (
	Projets        = Entity{Name: "projets", Resource: rest("projets", "/projets/", "/projets/{id}/"), LocalKey: localstore.Projects}
	SousProjets    = Entity{Name: "sous_projets", LocalKey: localstore.SubProjects}
	Incidents      = Entity{Name: "incidents", Resource: rest("incidents", "/incidents", "/incidents/{id}"), LocalKey: localstore.Incidents}
	Suivis         = Entity{Name: "suivis", LocalKey: localstore.IncidentFollowUps}
	Factures       = Entity{Name: "factures", Resource: rest("factures", "/facture/", "/facture/{id}/"), LocalKey: localstore.Invoices}
	Marches        = Entity{Name: "marches", LocalKey: localstore.Marches}
	MaitresOuvrage = Entity{Name: "maitres_ouvrage", Resource: rest("maitres_ouvrage", "/maitre-ouvrage/", "/maitre-ouvrage/{id}/"), LocalKey: localstore.MaitreOuvrages}
	Users          = Entity{Name: "users", Resource: rest("users", "/users", "/users/{id}"), LocalKey: localstore.Users}
	// La liste est sous /reunion/, l'élément sous /reunions/{id} sans slash final
	Reunions = Entity{Name: "reunions", Resource: rest("reunions", "/reunion/", "/reunions/{id}"), LocalKey: localstore.Meetings}
)

// All liste les entités exposées par l'API
var All = []Entity{Projets, SousProjets, Incidents, Suivis, Factures, Marches, MaitresOuvrage, Users, Reunions}

func rest(name, list, item string) upstream.Resource {
	return upstream.Resource{Name: name, ListPath: list, ItemPath: item}
}

// Source regroupe ce qu'il faut pour construire un dépôt
type Source struct {
	Config   *config.Config
	Client   *upstream.Client
	Document store.Documents
}

func NewSource(cfg *config.Config, client *upstream.Client, docs store.Documents) *Source {
	return &Source{Config: cfg, Client: client, Document: docs}
}

// resource applique UPSTREAM_PATH_<ENTITE> au chemin par défaut
func (s *Source) resource(e Entity) (upstream.Resource, error) {
	r := e.Resource
	r.Name = e.Name
	if path, ok := s.Config.Upstream.Paths[e.Name]; ok {
		list := "/" + strings.Trim(path, "/")
		item := list + "/{id}"
		if strings.HasSuffix(path, "/") {
			list += "/"
			item += "/"
		}
		r.ListPath, r.ItemPath = list, item
	}
	if r.ListPath == "" {
		return r, fmt.Errorf("aucun endpoint backend pour %s: définir UPSTREAM_PATH_%s ou SOURCE_%s=local",
			e.Name, strings.ToUpper(e.Name), strings.ToUpper(e.Name))
	}
	return r, nil
}

// Resolve renvoie le dépôt de l'entité selon SOURCE_<ENTITE>
func Resolve[T store.Entity[T]](s *Source, e Entity) (store.Store[T], error) {
	if s.Config.SourceOf(e.Name) == config.SourceLocal {
		return store.NewDocumentStore[T](s.Document, e.LocalKey), nil
	}

	r, err := s.resource(e)
	if err != nil {
		return nil, err
	}
	return upstream.NewResourceStore[T](s.Client, r), nil
}
