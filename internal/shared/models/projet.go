package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gestion-projets-core/internal/shared/ident"
)

// LigneBudget est une ligne du budget détaillé d'un projet.
type LigneBudget struct {
	Libelle string  `json:"libelle"`
	Montant float64 `json:"montant"`
}

// Budget vaut soit un montant global, soit une liste de lignes.
type Budget struct {
	Montant *float64
	Lignes  []LigneBudget
}

func (b *Budget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*b = Budget{}
	case data[0] == '[':
		var lignes []LigneBudget
		if err := json.Unmarshal(data, &lignes); err != nil {
			return fmt.Errorf("budget détaillé invalide: %w", err)
		}
		*b = Budget{Lignes: lignes}
	case data[0] == '"':
		var s json.Number
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("budget invalide: %w", err)
		}
		f, err := s.Float64()
		if err != nil {
			return fmt.Errorf("budget invalide: %w", err)
		}
		*b = Budget{Montant: &f}
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("budget invalide: %w", err)
		}
		*b = Budget{Montant: &f}
	}
	return nil
}

func (b Budget) MarshalJSON() ([]byte, error) {
	if b.Lignes != nil {
		return json.Marshal(b.Lignes)
	}
	if b.Montant != nil {
		return json.Marshal(*b.Montant)
	}
	return []byte("null"), nil
}

// Total additionne les lignes quand le budget est détaillé.
func (b Budget) Total() float64 {
	if b.Montant != nil {
		return *b.Montant
	}
	total := 0.0
	for _, l := range b.Lignes {
		total += l.Montant
	}
	return total
}

type MaitreOuvrageRef struct {
	ID  ident.ID `json:"id"`
	Nom string   `json:"nom,omitempty"`
}

type Projet struct {
	ID            ident.ID          `json:"id"`
	Nom           string            `json:"nom" validate:"required,min=2,max=200"`
	Description   string            `json:"description,omitempty"`
	Statut        string            `json:"statut,omitempty" validate:"omitempty,max=50"`
	Chef          Personne          `json:"chef"`
	Budget        Budget            `json:"budget"`
	DateDebut     string            `json:"date_debut,omitempty"`
	DateFin       string            `json:"date_fin,omitempty"`
	MaitreOuvrage *MaitreOuvrageRef `json:"maitre_ouvrage,omitempty"`
	Membres       []Personne        `json:"membres,omitempty"`
	Documents     []json.RawMessage `json:"documents,omitempty"`
	SousProjets   []json.RawMessage `json:"sous_projets,omitempty"`
}

func (p Projet) GetID() ident.ID { return p.ID }

func (p Projet) WithID(id ident.ID) Projet {
	p.ID = id
	return p
}

func (p Projet) SearchFields() []string {
	return []string{p.Nom, p.Description, p.Statut, p.Chef.NomComplet()}
}

func (p Projet) SortDate() string { return p.DateDebut }

type SousProjet struct {
	ID          ident.ID          `json:"id"`
	ProjetID    ident.ID          `json:"projet_id"`
	Nom         string            `json:"nom" validate:"required,min=2,max=200"`
	Description string            `json:"description,omitempty"`
	Statut      string            `json:"statut,omitempty"`
	Chef        Personne          `json:"chef"`
	DateDebut   string            `json:"date_debut,omitempty"`
	DateFin     string            `json:"date_fin,omitempty"`
	Membres     []Personne        `json:"membres,omitempty"`
	Documents   []json.RawMessage `json:"documents,omitempty"`
}

func (s SousProjet) GetID() ident.ID { return s.ID }

func (s SousProjet) WithID(id ident.ID) SousProjet {
	s.ID = id
	return s
}

func (s SousProjet) SearchFields() []string {
	return []string{s.Nom, s.Chef.NomComplet(), s.Statut, s.ProjetID.String()}
}

func (s SousProjet) SortDate() string { return s.DateDebut }
