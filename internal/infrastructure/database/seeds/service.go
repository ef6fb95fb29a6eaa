package seeds

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/store"
)

// Clés dont la valeur doit être un tableau d'entités
var collectionKeys = map[string]bool{
	localstore.Projects:          true,
	localstore.SubProjects:       true,
	localstore.Incidents:         true,
	localstore.IncidentFollowUps: true,
	localstore.Meetings:          true,
	localstore.Marches:           true,
	localstore.MaitreOuvrages:    true,
	localstore.Invoices:          true,
	localstore.Users:             true,
	localstore.DeletedReunions:   true,
}

// Collections lues élément par élément par les services d'entités.
// deletedReunions reste une valeur brute lue via le LocalStorage.
var entityKeys = map[string]bool{
	localstore.Projects:          true,
	localstore.SubProjects:       true,
	localstore.Incidents:         true,
	localstore.IncidentFollowUps: true,
	localstore.Meetings:          true,
	localstore.Marches:           true,
	localstore.MaitreOuvrages:    true,
	localstore.Invoices:          true,
	localstore.Users:             true,
}

type seedingService struct {
	storage localstore.LocalStorage
	docs    store.Documents
	log     *zap.Logger
}

// NewSeedingService crée le service d'import.
// Les collections d'entités passent par docs, le reste par storage.
func NewSeedingService(storage localstore.LocalStorage, docs store.Documents, log *zap.Logger) SeedingService {
	return &seedingService{
		storage: storage,
		docs:    docs,
		log:     log.Named("seeds"),
	}
}

// CheckSeedDataExists vérifie si des données locales sont déjà présentes
func (s *seedingService) CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error) {
	status := &SeedDataStatus{}

	projects, err := s.docs.All(ctx, localstore.Projects)
	if err != nil {
		return nil, ErrStorageOperation("vérification", localstore.Projects, err)
	}
	status.ProjectsExist = len(projects) > 0

	status.AllDataExists = status.ProjectsExist
	return status, nil
}

// LoadDumpFromFile charge un export localStorage depuis un fichier JSON
func (s *seedingService) LoadDumpFromFile(path string) (Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrJSONLoad(path, err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, ErrJSONLoad(path, err)
	}

	return dump, nil
}

// Import range chaque clé de l'export (INSERT uniquement sauf Overwrite).
// Les clés de collection sont validées avant toute écriture.
func (s *seedingService) Import(ctx context.Context, dump Dump, opts ImportOptions) (*ImportReport, error) {
	keys := make([]string, 0, len(dump))
	values := make(map[string]string, len(dump))
	for key, raw := range dump {
		value := storedValue(raw)
		if collectionKeys[key] && !gjson.Parse(value).IsArray() {
			return nil, ErrInvalidCollection(key)
		}
		keys = append(keys, key)
		values[key] = value
	}
	sort.Strings(keys)

	if opts.Reset {
		if err := s.reset(ctx); err != nil {
			return nil, err
		}
	}
	overwrite := opts.Overwrite || opts.Reset

	report := &ImportReport{Imported: []string{}, Skipped: []string{}}
	for _, key := range keys {
		if !overwrite {
			exists, err := s.exists(ctx, key)
			if err != nil {
				return report, ErrStorageOperation("lecture", key, err)
			}
			if exists {
				s.log.Info("clé déjà présente, ignorée", zap.String("key", key))
				report.Skipped = append(report.Skipped, key)
				continue
			}
		}

		if err := s.write(ctx, key, values[key]); err != nil {
			return report, ErrStorageOperation("écriture", key, err)
		}
		s.log.Info("clé importée", zap.String("key", key))
		report.Imported = append(report.Imported, key)
	}

	return report, nil
}

func (s *seedingService) exists(ctx context.Context, key string) (bool, error) {
	if entityKeys[key] {
		docs, err := s.docs.All(ctx, key)
		return len(docs) > 0, err
	}

	_, err := s.storage.GetItem(ctx, key)
	if errors.Is(err, localstore.ErrNoItem) {
		return false, nil
	}
	return err == nil, err
}

// write découpe une collection d'entités en documents selon son champ identifiant
func (s *seedingService) write(ctx context.Context, key, value string) error {
	if !entityKeys[key] {
		return s.storage.SetItem(ctx, key, value)
	}

	field := localstore.IDField(key)
	docs := []store.Document{}
	gjson.Parse(value).ForEach(func(_, el gjson.Result) bool {
		docs = append(docs, store.Document{
			ID:      el.Get(field).String(),
			Payload: []byte(el.Raw),
		})
		return true
	})
	return s.docs.Replace(ctx, key, docs)
}

// reset vide les collections d'entités puis les clés isolées
func (s *seedingService) reset(ctx context.Context) error {
	for key := range entityKeys {
		if err := s.docs.Replace(ctx, key, nil); err != nil {
			return ErrStorageOperation("réinitialisation", key, err)
		}
	}
	if c, ok := s.storage.(localstore.Clearer); ok {
		if err := c.Clear(ctx); err != nil {
			return ErrStorageOperation("réinitialisation", "*", err)
		}
	}
	s.log.Warn("stockage local réinitialisé avant import")
	return nil
}

// storedValue renvoie le texte tel que le navigateur le conservait
func storedValue(raw stdjson.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}
