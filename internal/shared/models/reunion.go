package models

import (
	"encoding/json"
	"strings"

	"gestion-projets-core/internal/shared/ident"
)

type Reunion struct {
	ID           ident.ID          `json:"id"`
	Titre        string            `json:"titre" validate:"required,max=200"`
	Date         string            `json:"date" validate:"required"`
	Heure        string            `json:"heure,omitempty"`
	Lieu         string            `json:"lieu,omitempty"`
	ProjetID     ident.ID          `json:"projet_id"`
	Participants []Personne        `json:"participants,omitempty"`
	OrdreDuJour  []string          `json:"ordre_du_jour,omitempty"`
	CompteRendu  string            `json:"compte_rendu,omitempty"`
	Documents    []json.RawMessage `json:"documents,omitempty"`
}

func (r Reunion) GetID() ident.ID { return r.ID }

func (r Reunion) WithID(id ident.ID) Reunion {
	r.ID = id
	return r
}

func (r Reunion) SearchFields() []string {
	return []string{r.Titre, r.Lieu, personnesText(r.Participants)}
}

func (r Reunion) SortDate() string {
	if r.Heure == "" || strings.Contains(r.Date, "T") {
		return r.Date
	}
	return r.Date + " " + r.Heure
}
