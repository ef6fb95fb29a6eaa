package seeds

import (
	"context"
	stdjson "encoding/json"
)

// Dump export brut du localStorage du navigateur: clé vers valeur.
// Une valeur chaîne JSON est rangée décodée; tout autre JSON est rangé tel quel.
type Dump map[string]stdjson.RawMessage

// ImportOptions options d'import
type ImportOptions struct {
	// Overwrite remplace les clés déjà présentes; sinon elles sont ignorées
	Overwrite bool
	// Reset vide le stockage local avant l'import
	Reset bool
}

// ImportReport résultat d'un import
type ImportReport struct {
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
}

// SeedDataStatus représente l'état des données locales
type SeedDataStatus struct {
	ProjectsExist bool `json:"projects_exist"`
	AllDataExists bool `json:"all_data_exists"`
}

// SeedingService import d'un export localStorage dans le stockage local configuré
type SeedingService interface {
	// Vérifications d'état
	CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error)

	// Import
	LoadDumpFromFile(path string) (Dump, error)
	Import(ctx context.Context, dump Dump, opts ImportOptions) (*ImportReport, error)
}

// GetMissingSeeds retourne la liste des données manquantes
func (s *SeedDataStatus) GetMissingSeeds() []string {
	var missing []string

	if !s.ProjectsExist {
		missing = append(missing, "projects")
	}

	return missing
}
