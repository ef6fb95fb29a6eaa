package models

import (
	"encoding/json"
	"strings"

	"gestion-projets-core/internal/shared/ident"
)

type Incident struct {
	ID           ident.ID          `json:"id"`
	Type         string            `json:"type" validate:"required,max=100"`
	Declarant    Personne          `json:"declarant"`
	Date         string            `json:"date" validate:"required"`
	Heure        string            `json:"heure,omitempty"`
	Lieu         string            `json:"lieu,omitempty" validate:"omitempty,max=200"`
	ProjetID     ident.ID          `json:"projet_id"`
	SousProjetID ident.ID          `json:"sous_projet_id"`
	Description  string            `json:"description,omitempty"`
	Documents    []json.RawMessage `json:"documents,omitempty"`
}

func (i Incident) GetID() ident.ID { return i.ID }

func (i Incident) WithID(id ident.ID) Incident {
	i.ID = id
	return i
}

// SearchFields: type, déclarant, lieu, projet.
func (i Incident) SearchFields() []string {
	return []string{i.Type, i.Declarant.NomComplet(), i.Lieu, i.ProjetID.String()}
}

// SortDate combine date et heure quand l'heure est renseignée.
func (i Incident) SortDate() string {
	if i.Heure == "" || strings.Contains(i.Date, "T") {
		return i.Date
	}
	return i.Date + " " + i.Heure
}

// Suivi est une étape de suivi d'incident, stockée à part sous incidentFollowUps.
type Suivi struct {
	ID          ident.ID `json:"id"`
	IncidentID  ident.ID `json:"incident_id"`
	Date        string   `json:"date"`
	Auteur      Personne `json:"auteur"`
	Commentaire string   `json:"commentaire" validate:"required"`
	Statut      string   `json:"statut,omitempty" validate:"omitempty,max=50"`
}

func (s Suivi) GetID() ident.ID { return s.ID }

func (s Suivi) WithID(id ident.ID) Suivi {
	s.ID = id
	return s
}

func (s Suivi) SearchFields() []string {
	return []string{s.Commentaire, s.Auteur.NomComplet(), s.Statut}
}

func (s Suivi) SortDate() string { return s.Date }
