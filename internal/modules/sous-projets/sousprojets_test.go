package sousprojets

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
	"gestion-projets-core/internal/modules/sous-projets/controllers"
	"gestion-projets-core/internal/modules/sous-projets/services"
	"gestion-projets-core/internal/shared/localstore"
)

const seed = `[
	{"id":1,"projet_id":10,"nom":"Tronçon nord","chef":"Moussa Fall","statut":"en cours","date_debut":"2024-02-01"},
	{"id":2,"projet_id":10,"nom":"Tronçon sud","chef":{"nom":"Diallo","prenom":"Awa"},"statut":"terminé","date_debut":"2024-03-01"},
	{"id":3,"projet_id":11,"nom":"Culées","chef":5,"statut":"planifié","date_debut":"2024-01-01"}
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
	require.NoError(t, storage.SetItem(context.Background(), localstore.SubProjects, seed))

	cfg := &config.Config{Sources: config.SourcesConfig{"sous_projets": config.SourceLocal}}
	client := upstream.NewClient(upstream.ClientConfig{BaseURL: "http://backend/api"}, zap.NewNop())
	svc, err := services.NewSousProjetService(datasource.NewSource(cfg, client, localstore.NewArrayDocuments(storage)))
	require.NoError(t, err)

	r := gin.New()
	RegisterSousProjetsRoutes(r, controllers.NewSousProjetController(svc))
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

func TestSousProjetsListNewestFirst(t *testing.T) {
	code, env := do(t, newRouter(t), http.MethodGet, "/api/v1/sous-projets", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Tronçon sud", "Tronçon nord", "Culées"}, names(t, env))
}

func TestSousProjetsSearchFields(t *testing.T) {
	r := newRouter(t)

	cases := map[string][]string{
		"tron":   {"Tronçon sud", "Tronçon nord"},
		"FALL":   {"Tronçon nord"},
		"awa":    {"Tronçon sud"},
		"planif": {"Culées"},
		"11":     {"Culées"},
		"absent": {},
	}
	for search, want := range cases {
		code, env := do(t, r, http.MethodGet, "/api/v1/sous-projets?search="+search, "")
		require.Equal(t, http.StatusOK, code, search)
		assert.Equal(t, want, names(t, env), search)
	}
}

func TestSousProjetNotFound(t *testing.T) {
	r := newRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, env := do(t, r, method, "/api/v1/sous-projets/99", `{"nom":"Tronçon est","projet_id":10}`)
		assert.Equal(t, http.StatusNotFound, code, method)
		assert.False(t, env.Success, method)
		assert.Equal(t, "Sous-projet non trouvé", env.Message, method)
		assert.Equal(t, "null", string(env.Data), method)
	}
}

func TestSousProjetUpdateKeepsPathID(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPut, "/api/v1/sous-projets/3", `{"id":42,"nom":"Culées et piles","projet_id":11}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "Sous-projet modifié avec succès", env.Message)

	code, env = do(t, r, http.MethodGet, "/api/v1/sous-projets/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Culées et piles")

	code, _ = do(t, r, http.MethodGet, "/api/v1/sous-projets/42", "")
	assert.Equal(t, http.StatusNotFound, code)
}
