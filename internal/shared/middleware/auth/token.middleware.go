package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/shared/localstore"
)

// ContextToken clé gin du jeton retenu pour la requête
const ContextToken = "token"

const (
	// SessionHeader porte l'identifiant de session renvoyé par /auth/login
	SessionHeader = "X-Session-Id"
	// SessionCookie même identifiant pour un navigateur
	SessionCookie = "session_id"
)

// TokenMiddleware choisit le jeton transmis au backend: en-tête Authorization,
// sinon jeton de la session du client (en-tête X-Session-Id ou cookie session_id).
// Sans l'un ni l'autre, le client backend utilise le jeton de service configuré.
type TokenMiddleware struct {
	storage localstore.LocalStorage
	log     *zap.Logger
}

func NewTokenMiddleware(storage localstore.LocalStorage, log *zap.Logger) *TokenMiddleware {
	return &TokenMiddleware{storage: storage, log: log.Named("auth")}
}

func (m *TokenMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Format du jeton invalide",
				"data":    nil,
				"details": map[string]interface{}{
					"code":          "INVALID_TOKEN_FORMAT",
					"header_format": "Authorization: Bearer {token}",
				},
			})
			return
		}

		if token == "" {
			token = m.sessionToken(c)
		}
		if token != "" {
			c.Set(ContextToken, token)
			c.Request = c.Request.WithContext(upstream.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// SessionID renvoie l'identifiant de session présenté par le client, "" sinon
func SessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(SessionHeader)); id != "" {
		return id
	}
	if id, err := c.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(id)
	}
	return ""
}

func (m *TokenMiddleware) sessionToken(c *gin.Context) string {
	id := SessionID(c)
	if id == "" {
		return ""
	}

	raw, err := m.storage.GetItem(c.Request.Context(), localstore.Session(id))
	if err != nil {
		if !errors.Is(err, localstore.ErrNoItem) {
			m.log.Warn("lecture de la session impossible", zap.Error(err))
		}
		return ""
	}
	return gjson.Get(raw, "token").String()
}

// extractBearerToken renvoie ok=false pour un en-tête présent mais mal formé
func extractBearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", true
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}
