// Package models décrit les entités manipulées par la console.
//
// Les champs absents décodent vers leur valeur zéro et les champs inconnus
// des anciennes données sont ignorés: aucune contrainte référentielle n'est vérifiée.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gestion-projets-core/internal/shared/ident"
)

// Personne est une référence vers un utilisateur. Selon l'écran, le backend
// envoie un nom, un identifiant ou un objet. La forme reçue est conservée à l'écriture.
type Personne struct {
	ID     ident.ID `json:"id,omitempty"`
	Nom    string   `json:"nom,omitempty"`
	Prenom string   `json:"prenom,omitempty"`
	Email  string   `json:"email,omitempty"`

	form byte
}

const (
	formObject byte = iota
	formText
	formID
)

type personneJSON struct {
	ID     ident.ID `json:"id"`
	Nom    string   `json:"nom"`
	Name   string   `json:"name"`
	Prenom string   `json:"prenom"`
	Email  string   `json:"email"`
}

func (p *Personne) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Personne{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Personne{Nom: s, form: formText}
		return nil
	case '{':
		var raw personneJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		nom := raw.Nom
		if nom == "" {
			nom = raw.Name
		}
		*p = Personne{ID: raw.ID, Nom: nom, Prenom: raw.Prenom, Email: raw.Email, form: formObject}
		return nil
	default:
		var id ident.ID
		if err := id.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("référence personne invalide: %w", err)
		}
		*p = Personne{ID: id, form: formID}
		return nil
	}
}

func (p Personne) MarshalJSON() ([]byte, error) {
	switch p.form {
	case formText:
		return json.Marshal(p.Nom)
	case formID:
		return p.ID.MarshalJSON()
	}
	type plain Personne
	return json.Marshal(plain(p))
}

// NomComplet renvoie "Nom Prénom" ou, à défaut, l'identifiant.
func (p Personne) NomComplet() string {
	full := strings.TrimSpace(p.Nom + " " + p.Prenom)
	if full == "" {
		return p.ID.String()
	}
	return full
}

func (p Personne) IsZero() bool {
	return p.ID.IsZero() && p.Nom == "" && p.Prenom == ""
}

// Searchable est implémenté par les entités affichées dans une page de liste.
type Searchable interface {
	SearchFields() []string
	SortDate() string
}

func personnesText(list []Personne) string {
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.NomComplet())
	}
	return strings.Join(names, " ")
}
