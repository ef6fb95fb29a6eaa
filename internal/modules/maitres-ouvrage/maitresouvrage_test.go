package maitresouvrage

import (
	"context"
	"encoding/json"
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
	"gestion-projets-core/internal/modules/maitres-ouvrage/controllers"
	"gestion-projets-core/internal/modules/maitres-ouvrage/services"
	"gestion-projets-core/internal/shared/localstore"
)

const seed = `[
	{"id":1,"nom":"Ageroute","type":"public","email":"contact@ageroute.ci","telephone":"+225 27 20 25 00"},
	{"id":2,"nom":"Port autonome","type":"parapublic","email":"info@portautonome.ci","telephone":"0102030405"}
]`

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type page struct {
	Items []struct {
		Nom string `json:"nom"`
	} `json:"items"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := localstore.NewMemoryStorage()
	require.NoError(t, storage.SetItem(context.Background(), localstore.MaitreOuvrages, seed))

	cfg := &config.Config{Sources: config.SourcesConfig{"maitres_ouvrage": config.SourceLocal}}
	client := upstream.NewClient(upstream.ClientConfig{BaseURL: "http://backend/api"}, zap.NewNop())
	svc, err := services.NewMaitreOuvrageService(datasource.NewSource(cfg, client, localstore.NewArrayDocuments(storage)))
	require.NoError(t, err)

	r := gin.New()
	RegisterMaitresOuvrageRoutes(r, controllers.NewMaitreOuvrageController(svc))
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func names(t *testing.T, env envelope) []string {
	t.Helper()
	var p page
	require.NoError(t, json.Unmarshal(env.Data, &p))
	out := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, item.Nom)
	}
	return out
}

func TestMaitresOuvrageKeepBackendOrder(t *testing.T) {
	code, env := do(t, newRouter(t), http.MethodGet, "/api/v1/maitres-ouvrage", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Ageroute", "Port autonome"}, names(t, env))
}

func TestMaitresOuvrageSearchFields(t *testing.T) {
	r := newRouter(t)

	cases := map[string][]string{
		"AGEROUTE":     {"Ageroute"},
		"parapublic":   {"Port autonome"},
		"public":       {"Ageroute", "Port autonome"},
		"portautonome": {"Port autonome"},
		"0102":         {"Port autonome"},
		"abidjan":      {},
	}
	for search, want := range cases {
		code, env := do(t, r, http.MethodGet, "/api/v1/maitres-ouvrage?search="+search, "")
		require.Equal(t, http.StatusOK, code, search)
		assert.Equal(t, want, names(t, env), search)
	}
}

func TestMaitreOuvrageNotFound(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodDelete, "/api/v1/maitres-ouvrage/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Maître d'ouvrage supprimé avec succès", env.Message)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, env := do(t, r, method, "/api/v1/maitres-ouvrage/1", `{"nom":"Ageroute"}`)
		assert.Equal(t, http.StatusNotFound, code, method)
		assert.False(t, env.Success, method)
		assert.Equal(t, "Maître d'ouvrage non trouvé", env.Message, method)
	}
}
