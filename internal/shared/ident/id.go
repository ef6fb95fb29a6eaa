// Package ident porte les identifiants faiblement typés du backend et du localStorage.
//
// Le backend renvoie tantôt des entiers, tantôt des chaînes. ID conserve la
// forme d'origine pour que la réécriture d'un tableau reproduise exactement
// le JSON lu.
package ident

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

type ID struct {
	raw     string
	numeric bool
}

// New génère un identifiant local (UUID v4).
func New() ID {
	return ID{raw: uuid.New().String()}
}

// Parse interprète un identifiant venant d'une URL: les chiffres seuls deviennent numériques.
func Parse(s string) ID {
	if s == "" {
		return ID{}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID{raw: s, numeric: true}
	}
	return ID{raw: s}
}

func FromInt(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10), numeric: true}
}

func (id ID) String() string {
	return id.raw
}

func (id ID) IsZero() bool {
	return id.raw == ""
}

func (id ID) IsNumeric() bool {
	return id.numeric
}

// Equal compare les formes textuelles: 12 et "12" désignent la même entité.
func (id ID) Equal(o ID) bool {
	return id.raw == o.raw
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ID{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("identifiant invalide: %w", err)
		}
		*id = ID{raw: s}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("identifiant invalide %s: %w", string(data), err)
		}
		*id = ID{raw: n.String(), numeric: true}
		return nil
	}
}
