package ident

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDKeepsJSONForm(t *testing.T) {
	var payload struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	in := `{"a":12,"b":"12","c":null}`
	require.NoError(t, json.Unmarshal([]byte(in), &payload))

	assert.True(t, payload.A.IsNumeric())
	assert.False(t, payload.B.IsNumeric())
	assert.True(t, payload.C.IsZero())
	assert.True(t, payload.A.Equal(payload.B))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestParse(t *testing.T) {
	assert.True(t, Parse("42").IsNumeric())
	assert.False(t, Parse("a1b2").IsNumeric())
	assert.True(t, Parse("").IsZero())
	assert.Equal(t, "7", FromInt(7).String())
}

func TestNewIsUnique(t *testing.T) {
	a, b := New(), New()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a.String(), b.String())
}
