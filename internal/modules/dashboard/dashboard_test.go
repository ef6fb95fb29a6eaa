package dashboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/modules/dashboard/controllers"
	"gestion-projets-core/internal/modules/dashboard/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(t *testing.T, status int, body string) (*gin.Engine, *[]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	paths := &[]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*paths = append(*paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(upstream.ClientConfig{BaseURL: srv.URL + "/api"}, zap.NewNop())
	r := gin.New()
	RegisterDashboardRoutes(r, controllers.NewDashboardController(services.NewDashboardService(client)))
	return r, paths
}

func get(t *testing.T, r http.Handler, path string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestDashboardUnwrapsNestedEnvelope(t *testing.T) {
	r, paths := newRouter(t, http.StatusOK,
		`{"success":true,"data":{"success":true,"message":"Tableau de bord","data":{"projets":4,"incidents":2}}}`)

	code, env := get(t, r, "/api/v1/dashboard/chef")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Tableau de bord", env.Message)
	assert.JSONEq(t, `{"projets":4,"incidents":2}`, string(env.Data))
	assert.Equal(t, []string{"/api/dashboard/chef"}, *paths)
}

func TestDashboardRejectsUnknownRole(t *testing.T) {
	r, paths := newRouter(t, http.StatusOK, `{}`)

	code, env := get(t, r, "/api/v1/dashboard/visiteur")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Empty(t, *paths)
}

func TestDashboardBackendFailure(t *testing.T) {
	r, _ := newRouter(t, http.StatusServiceUnavailable, `{"detail":"Maintenance"}`)

	code, env := get(t, r, "/api/v1/dashboard/admin")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "Maintenance", env.Message)
}
