package resource

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

	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/store"
)

type body struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Details map[string]interface{} `json:"details"`
}

func newRouter(t *testing.T, opts Options[models.Marche]) (*gin.Engine, *Service[models.Marche]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	docs := localstore.NewArrayDocuments(localstore.NewMemoryStorage())
	svc := NewService[models.Marche](store.NewDocumentStore[models.Marche](docs, localstore.Marches), opts)
	ctrl := NewController[models.Marche](svc, Labels{Created: "Marché créé", Updated: "Marché modifié", Deleted: "Marché supprimé"})

	r := gin.New()
	ctrl.Register(r.Group("/marches"))
	return r, svc
}

func call(r *gin.Engine, method, path, payload string) (*httptest.ResponseRecorder, body) {
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	_ = json.Unmarshal(w.Body.Bytes(), &b)
	return w, b
}

func TestControllerCRUD(t *testing.T) {
	r, _ := newRouter(t, Options[models.Marche]{NotFound: "Marché non trouvé"})

	w, b := call(r, http.MethodPost, "/marches", `{"id":99,"numero":"M-01","nom":"Voirie","prix_ht":100,"prix_ttc":118}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Marché créé", b.Message)

	var created models.Marche
	require.NoError(t, json.Unmarshal(b.Data, &created))
	assert.False(t, created.ID.IsZero())
	assert.NotEqual(t, "99", created.ID.String())

	w, b = call(r, http.MethodPut, "/marches/"+created.ID.String(), `{"numero":"M-01","nom":"Voirie urbaine","prix_ht":100,"prix_ttc":118}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Marche
	require.NoError(t, json.Unmarshal(b.Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Voirie urbaine", updated.Nom)

	w, b = call(r, http.MethodGet, "/marches/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, b.Success)

	w, _ = call(r, http.MethodDelete, "/marches/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	w, b = call(r, http.MethodGet, "/marches/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, b.Success)
	assert.Equal(t, "Marché non trouvé", b.Message)
}

func TestControllerValidation(t *testing.T) {
	r, _ := newRouter(t, Options[models.Marche]{
		Check: func(m models.Marche) map[string]string {
			if m.Fournisseur == "inconnu" {
				return map[string]string{"fournisseur": "Fournisseur non référencé"}
			}
			return nil
		},
	})

	w, b := call(r, http.MethodPost, "/marches", `{"nom":"Voirie","prix_ht":100,"prix_ttc":50}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	champs := b.Details["champs"].(map[string]interface{})
	assert.Equal(t, "Ce champ est requis", champs["numero"])
	assert.Contains(t, champs, "prix_ttc")

	w, b = call(r, http.MethodPost, "/marches", `{"numero":"M-02","nom":"Voirie","fournisseur":"inconnu"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	champs = b.Details["champs"].(map[string]interface{})
	assert.Equal(t, "Fournisseur non référencé", champs["fournisseur"])

	w, _ = call(r, http.MethodPost, "/marches", `{"numero":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(r, http.MethodPut, "/marches/absent", `{"numero":"M-03","nom":"Pont"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestControllerListFiltersAndPaginates(t *testing.T) {
	r, svc := newRouter(t, Options[models.Marche]{})

	for _, m := range []models.Marche{
		{Numero: "M-1", Nom: "Voirie nord", DateDebut: "2024-01-10"},
		{Numero: "M-2", Nom: "Voirie sud", DateDebut: "2024-03-10"},
		{Numero: "M-3", Nom: "Éclairage", DateDebut: "2024-02-10"},
		{Numero: "M-4", Nom: "Voirie est", DateDebut: "2024-04-10"},
		{Numero: "M-5", Nom: "Voirie ouest", DateDebut: "2024-05-10"},
		{Numero: "M-6", Nom: "Voirie centre", DateDebut: "2024-06-10"},
		{Numero: "M-7", Nom: "Voirie port", DateDebut: "2024-07-10"},
	} {
		_, err := svc.Create(context.Background(), m)
		require.NoError(t, err)
	}

	w, b := call(r, http.MethodGet, "/marches?search=VOIRIE&page=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Items      []models.Marche `json:"items"`
		Pagination struct {
			Total      int  `json:"total"`
			TotalPages int  `json:"total_pages"`
			HasNext    bool `json:"has_next"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(b.Data, &page))
	assert.Equal(t, 6, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "M-1", page.Items[0].Numero)

	w, _ = call(r, http.MethodGet, "/marches?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
