package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/modules/auth/controllers"
	"gestion-projets-core/internal/modules/auth/services"
	users "gestion-projets-core/internal/modules/users/services"
	"gestion-projets-core/internal/shared/localstore"
	authmw "gestion-projets-core/internal/shared/middleware/auth"
	"gestion-projets-core/internal/shared/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details struct {
		Code string `json:"code"`
	} `json:"details"`
}

type loginData struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	User  *struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

func newRouter(t *testing.T, source, backendURL string) (*gin.Engine, *localstore.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := localstore.NewMemoryStorage()
	cfg := &config.Config{
		Sources:  config.SourcesConfig{"users": source},
		Upstream: config.UpstreamConfig{BaseURL: backendURL},
	}
	client := upstream.NewClient(upstream.ClientConfig{BaseURL: backendURL}, zap.NewNop())
	src := datasource.NewSource(cfg, client, localstore.NewArrayDocuments(storage))

	userService, err := users.NewUserService(src)
	require.NoError(t, err)

	svc := services.NewAuthService(cfg, userService, client, storage, zap.NewNop())
	r := gin.New()
	RegisterAuthRoutes(r, controllers.NewAuthController(svc))
	return r, storage
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	code, env, _ := doSession(t, r, method, path, body, "")
	return code, env
}

// doSession envoie la requête avec l'identifiant de session donné et renvoie celui de la réponse
func doSession(t *testing.T, r http.Handler, method, path, body, sessionID string) (int, envelope, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(authmw.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env, rec.Header().Get(authmw.SessionHeader)
}

func seedUser(t *testing.T, storage localstore.LocalStorage) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	raw, err := json.Marshal([]map[string]interface{}{
		{"id": 1, "nom": "Kouassi", "email": "awa@exemple.ci", "role": "chef", "password": hash},
	})
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(context.Background(), localstore.Users, string(raw)))
}

func seedUsers(t *testing.T, storage localstore.LocalStorage) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	raw, err := json.Marshal([]map[string]interface{}{
		{"id": 1, "nom": "Kouassi", "email": "awa@exemple.ci", "role": "chef", "password": hash},
		{"id": 2, "nom": "Bamba", "email": "ali@exemple.ci", "role": "agent", "password": hash},
	})
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(context.Background(), localstore.Users, string(raw)))
}

func TestLocalLoginStoresSession(t *testing.T) {
	r, storage := newRouter(t, config.SourceLocal, "http://127.0.0.1:1")
	seedUser(t, storage)
	ctx := context.Background()

	code, env, header := doSession(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"AWA@exemple.ci","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, code, env.Message)

	var data loginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	require.NotEmpty(t, data.SessionID)
	assert.Equal(t, data.SessionID, header)
	require.NotNil(t, data.User)
	assert.Equal(t, "awa@exemple.ci", data.User.Email)
	assert.Empty(t, data.User.Password)

	stored, err := storage.GetItem(ctx, localstore.Session(data.SessionID))
	require.NoError(t, err)
	assert.Contains(t, stored, data.Token)
	_, err = storage.GetItem(ctx, localstore.Token)
	assert.ErrorIs(t, err, localstore.ErrNoItem)

	code, env, _ = doSession(t, r, http.MethodGet, "/api/v1/auth/me", "", data.SessionID)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"active":true`)
	assert.Contains(t, string(env.Data), "awa@exemple.ci")

	code, _, _ = doSession(t, r, http.MethodPost, "/api/v1/auth/logout", "", data.SessionID)
	require.Equal(t, http.StatusOK, code)
	_, err = storage.GetItem(ctx, localstore.Session(data.SessionID))
	assert.ErrorIs(t, err, localstore.ErrNoItem)

	code, env, _ = doSession(t, r, http.MethodGet, "/api/v1/auth/me", "", data.SessionID)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "NO_SESSION", env.Details.Code)
}

func TestSessionsAreScopedPerClient(t *testing.T) {
	r, storage := newRouter(t, config.SourceLocal, "http://127.0.0.1:1")
	seedUsers(t, storage)

	_, _, awa := doSession(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"awa@exemple.ci","password":"secret123"}`, "")
	_, _, ali := doSession(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"ali@exemple.ci","password":"secret123"}`, "")
	require.NotEmpty(t, awa)
	require.NotEqual(t, awa, ali)

	code, env := do(t, r, http.MethodGet, "/api/v1/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.NotContains(t, string(env.Data), "exemple.ci")

	_, env, _ = doSession(t, r, http.MethodGet, "/api/v1/auth/me", "", ali)
	assert.Contains(t, string(env.Data), "ali@exemple.ci")
	assert.NotContains(t, string(env.Data), "awa@exemple.ci")

	doSession(t, r, http.MethodPost, "/api/v1/auth/logout", "", ali)
	code, env, _ = doSession(t, r, http.MethodGet, "/api/v1/auth/me", "", awa)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "awa@exemple.ci")
}

func TestLocalLoginRejectsBadCredentials(t *testing.T) {
	r, storage := newRouter(t, config.SourceLocal, "http://127.0.0.1:1")
	seedUser(t, storage)

	for _, body := range []string{
		`{"email":"awa@exemple.ci","password":"mauvais1"}`,
		`{"email":"inconnu@exemple.ci","password":"secret123"}`,
	} {
		code, env := do(t, r, http.MethodPost, "/api/v1/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, code, body)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Details.Code, body)
	}

	code, _ := do(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"pas-un-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpstreamLogin(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if !strings.Contains(string(body), "secret123") {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"Identifiants invalides"}`)
			return
		}
		_, _ = io.WriteString(w, `{"access":"jwt.abc","user":{"id":3,"nom":"Traoré","email":"moussa@exemple.ci","role":"admin"}}`)
	}))
	t.Cleanup(srv.Close)

	r, storage := newRouter(t, config.SourceUpstream, srv.URL+"/api")

	code, env := do(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"moussa@exemple.ci","password":"secret123"}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "/api/login/", path)

	var data loginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "jwt.abc", data.Token)

	require.NotEmpty(t, data.SessionID)
	stored, err := storage.GetItem(context.Background(), localstore.Session(data.SessionID))
	require.NoError(t, err)
	assert.Contains(t, stored, `"token":"jwt.abc"`)

	code, env = do(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"moussa@exemple.ci","password":"mauvais1"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Details.Code)
}
