package dto

import (
	"gestion-projets-core/internal/infrastructure/database/seeds"
)

// BackendInfoDTO état du backend REST
type BackendInfoDTO struct {
	BaseURL   string `json:"base_url"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

// StorageInfoDTO état du stockage local
type StorageInfoDTO struct {
	Driver   string                `json:"driver"`
	SeedPath string                `json:"seed_path,omitempty"`
	Seed     *seeds.SeedDataStatus `json:"seed"`
}

// SystemInfoResponse réponse de /api/v1/system/info
type SystemInfoResponse struct {
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Backend     BackendInfoDTO    `json:"backend"`
	Storage     StorageInfoDTO    `json:"storage"`
	Sources     map[string]string `json:"sources"`
}

// AlerteDTO représente une alerte système
type AlerteDTO struct {
	Type    string                 `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// StandardAPIResponse représente la structure standard des réponses système
type StandardAPIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
	Alertes []AlerteDTO `json:"alertes,omitempty"`
}
