package seeds

import "fmt"

// SeedingError représente une erreur d'import
type SeedingError struct {
	Message string                 `json:"message"`
	Type    string                 `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implémente l'interface error
func (e *SeedingError) Error() string {
	return e.Message
}

// NewSeedingError crée une nouvelle erreur d'import
func NewSeedingError(message, errorType string, details map[string]interface{}) *SeedingError {
	return &SeedingError{
		Message: message,
		Type:    errorType,
		Details: details,
	}
}

// Types d'erreur d'import
const (
	ErrorTypeJSONLoad          = "json_load_error"
	ErrorTypeInvalidCollection = "invalid_collection"
	ErrorTypeStorage           = "storage_error"
)

// Erreurs prédéfinies pour l'import
var (
	ErrJSONLoad = func(filePath string, err error) error {
		return NewSeedingError(
			fmt.Sprintf("impossible de charger le fichier JSON %s: %v", filePath, err),
			ErrorTypeJSONLoad,
			map[string]interface{}{"file_path": filePath, "error": err.Error()},
		)
	}

	ErrInvalidCollection = func(key string) error {
		return NewSeedingError(
			fmt.Sprintf("la clé %s doit contenir un tableau JSON", key),
			ErrorTypeInvalidCollection,
			map[string]interface{}{"key": key},
		)
	}

	ErrStorageOperation = func(operation, key string, err error) error {
		return NewSeedingError(
			fmt.Sprintf("erreur stockage lors de %s (%s): %v", operation, key, err),
			ErrorTypeStorage,
			map[string]interface{}{"operation": operation, "key": key, "error": err.Error()},
		)
	}
)
