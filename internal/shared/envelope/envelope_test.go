package envelope

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDoublyWrappedFacture(t *testing.T) {
	body := `{"success":true,"data":{"success":true,"data":[{"id_facture":1}]}}`

	env := Normalize([]byte(body))

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[{"id_facture":1}]}`, string(out))
}

func TestNormalizeShapesAgree(t *testing.T) {
	want := `[{"id":1,"nom":"Route"},{"id":2,"nom":"Pont"}]`

	shapes := map[string]string{
		"simple":  `{"success":true,"message":"ok","data":` + want + `}`,
		"double":  `{"success":true,"message":"ok","data":{"success":true,"message":"ok","data":` + want + `}}`,
		"tableau": want,
		"results": `{"count":2,"results":` + want + `}`,
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			env := Normalize([]byte(body))
			assert.True(t, env.Success)
			assert.JSONEq(t, want, string(env.Data))
		})
	}
}

func TestNormalizeKeepsInnerFailure(t *testing.T) {
	env := Normalize([]byte(`{"success":true,"data":{"success":false,"message":"Facture introuvable"}}`))

	assert.False(t, env.Success)
	assert.Equal(t, "Facture introuvable", env.Message)
}

func TestNormalizeOuterMessageFallback(t *testing.T) {
	env := Normalize([]byte(`{"success":true,"message":"Liste","data":{"success":true,"data":[]}}`))

	assert.Equal(t, "Liste", env.Message)
}

func TestNormalizeCount(t *testing.T) {
	env := Normalize([]byte(`{"count":42,"next":null,"results":[]}`))

	require.NotNil(t, env.Total)
	assert.Equal(t, 42, *env.Total)

	env = Normalize([]byte(`{"success":true,"data":{"count":3,"results":[1,2,3]}}`))
	require.NotNil(t, env.Total)
	assert.Equal(t, 3, *env.Total)
	assert.JSONEq(t, `[1,2,3]`, string(env.Data))
}

func TestNormalizeInvalidBody(t *testing.T) {
	for _, body := range []string{"", "  ", "<html>502</html>"} {
		env := Normalize([]byte(body))
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Message)
	}
}

func TestNormalizeBareObject(t *testing.T) {
	env := Normalize([]byte(`{"total_projets":4}`))

	assert.True(t, env.Success)
	assert.JSONEq(t, `{"total_projets":4}`, string(env.Data))
}

func TestFailure(t *testing.T) {
	out, err := json.Marshal(Failure("Erreur réseau", true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Erreur réseau","data":[]}`, string(out))

	out, err = json.Marshal(Failure("Erreur réseau", false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Erreur réseau","data":null}`, string(out))
}

func TestDecode(t *testing.T) {
	type facture struct {
		ID int `json:"id_facture"`
	}

	res := Decode[[]facture](Normalize([]byte(`{"success":true,"data":{"success":true,"data":[{"id_facture":1}]}}`)))
	require.True(t, res.IsOk())
	got, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, []facture{{ID: 1}}, got)

	res = Decode[[]facture](Normalize([]byte(`{"success":false,"message":"Non autorisé"}`)))
	_, err = res.Unwrap()
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Non autorisé", rejected.Message)

	_, err = Decode[[]facture](Normalize([]byte(`{"success":true,"data":"pas une liste"}`))).Unwrap()
	assert.Error(t, err)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Not found.", Message([]byte(`{"detail":"Not found."}`)))
	assert.Equal(t, "Accès refusé", Message([]byte(`{"error":"Accès refusé"}`)))
	assert.Empty(t, Message([]byte(`<html>502</html>`)))
}
