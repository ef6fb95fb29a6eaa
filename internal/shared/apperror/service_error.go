// Package apperror porte les erreurs métier communes aux services des modules.
package apperror

import "errors"

const (
	TypeValidation   = "validation"
	TypeNotFound     = "not_found"
	TypeUpstream     = "upstream"
	TypeConflict     = "conflict"
	TypeUnauthorized = "unauthorized"
)

// ServiceError erreur métier commune à tous les services
type ServiceError struct {
	Type    string                 `json:"type"` // "validation", "not_found", "upstream", "conflict", "unauthorized"
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func Validation(message string, champs map[string]string) *ServiceError {
	return &ServiceError{
		Type:    TypeValidation,
		Message: message,
		Details: map[string]interface{}{
			"code":   "VALIDATION_ERROR",
			"champs": champs,
		},
	}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Type: TypeNotFound, Message: message}
}

func Conflict(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: TypeConflict, Message: message, Details: details}
}

// Unauthorized identifiants refusés ou aucune session
func Unauthorized(message, code string) *ServiceError {
	return &ServiceError{Type: TypeUnauthorized, Message: message, Details: map[string]interface{}{"code": code}}
}

// Upstream échec du backend REST; status vaut 0 pour une erreur de transport
func Upstream(message string, status int) *ServiceError {
	return &ServiceError{
		Type:    TypeUpstream,
		Message: message,
		Details: map[string]interface{}{
			"code":            "UPSTREAM_ERROR",
			"upstream_status": status,
		},
	}
}

// As extrait une *ServiceError de la chaîne d'erreurs
func As(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
