package models

import (
	"encoding/json"

	"gestion-projets-core/internal/shared/ident"
)

const (
	RoleAdmin    = "admin"
	RoleChef     = "chef"
	RoleEmployee = "employee"
)

// Roles reconnus par le backend et le tableau de bord.
var Roles = []string{RoleAdmin, RoleChef, RoleEmployee}

func IsRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User porte nom/prenom. Les anciennes données utilisent name à la place de nom:
// il est lu mais jamais réécrit.
type User struct {
	ID        ident.ID `json:"id"`
	Nom       string   `json:"nom" validate:"required,min=2,max=100"`
	Prenom    string   `json:"prenom" validate:"omitempty,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Role      string   `json:"role" validate:"required,oneof=admin chef employee"`
	Etat      string   `json:"etat,omitempty" validate:"omitempty,max=50"`
	Matricule string   `json:"matricule,omitempty" validate:"omitempty,max=50"`
	FCMToken  string   `json:"fcm_token,omitempty"`
	Password  string   `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var raw struct {
		plain
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User(raw.plain)
	if u.Nom == "" {
		u.Nom = raw.Name
	}
	return nil
}

func (u User) GetID() ident.ID { return u.ID }

func (u User) WithID(id ident.ID) User {
	u.ID = id
	return u
}

func (u User) SearchFields() []string {
	return []string{u.Nom, u.Prenom, u.Email, u.Role, u.Matricule}
}

func (u User) SortDate() string { return "" }

// Public retire le mot de passe avant envoi à la console.
func (u User) Public() User {
	u.Password = ""
	return u
}
