// Package response écrit les enveloppes {success, message, data} renvoyées à la console.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/envelope"
	"gestion-projets-core/internal/shared/store"
)

// upstreamFailure est implémentée par les erreurs du client backend
type upstreamFailure interface {
	UpstreamStatus() int
	UpstreamMessage() string
}

func OK(ctx *gin.Context, message string, data interface{}) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	ctx.JSON(http.StatusOK, body)
}

func Created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Error traduit une erreur de service en réponse HTTP (data: null).
// Le texte d'une erreur interne part dans ctx.Errors, relevé par le logger, jamais dans le corps.
func Error(ctx *gin.Context, err error) {
	writeError(ctx, err, false)
}

// ListError comme Error pour une route de liste (data: []).
func ListError(ctx *gin.Context, err error) {
	writeError(ctx, err, true)
}

func writeError(ctx *gin.Context, err error, list bool) {
	status, message, details := describe(err)
	if status >= http.StatusInternalServerError {
		_ = ctx.Error(err)
	}

	env := envelope.Failure(message, list)
	body := gin.H{"success": env.Success, "message": env.Message, "data": env.Data}
	if details != nil {
		body["details"] = details
	}
	ctx.AbortWithStatusJSON(status, body)
}

func describe(err error) (int, string, map[string]interface{}) {
	if serviceErr, ok := apperror.As(err); ok {
		return statusOf(serviceErr.Type), serviceErr.Message, serviceErr.Details
	}

	var upstreamErr upstreamFailure
	var rejected *envelope.RejectedError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Élément non trouvé", nil
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Délai dépassé", map[string]interface{}{"code": "TIMEOUT"}
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, upstreamErr.UpstreamMessage(), map[string]interface{}{
			"code":            "UPSTREAM_ERROR",
			"upstream_status": upstreamErr.UpstreamStatus(),
		}
	case errors.As(err, &rejected):
		return http.StatusBadGateway, rejected.Error(), map[string]interface{}{"code": "UPSTREAM_ERROR"}
	}

	return http.StatusInternalServerError, "Une erreur interne s'est produite", map[string]interface{}{"code": "INTERNAL_ERROR"}
}

func statusOf(errorType string) int {
	switch errorType {
	case apperror.TypeValidation:
		return http.StatusBadRequest
	case apperror.TypeNotFound:
		return http.StatusNotFound
	case apperror.TypeConflict:
		return http.StatusConflict
	case apperror.TypeUnauthorized:
		return http.StatusUnauthorized
	case apperror.TypeUpstream:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
