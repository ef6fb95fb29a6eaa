package dto

import "gestion-projets-core/internal/shared/models"

// LoginRequest représente la requête de connexion
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse représente la réponse de connexion réussie
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"session_id"`
	User      *models.User `json:"user,omitempty"`
}

// MeResponse représente la réponse du endpoint /me
type MeResponse struct {
	User    *models.User `json:"user,omitempty"`
	Session SessionInfo  `json:"session"`
}

// SessionInfo état de la session enregistrée
type SessionInfo struct {
	Active bool   `json:"active"`
	Source string `json:"source"` // upstream ou local
}
