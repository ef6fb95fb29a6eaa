// Package envelope ramène les différentes formes de réponse du backend à une enveloppe unique.
//
// Formes acceptées pour un même appel:
//
//	{success, message, data: T}
//	{success, message, data: {success, message, data: T}}
//	T[] ou {results: T[], count}
//
// Normalize produit toujours {success, message, data}.
package envelope

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const defaultFailureMessage = "Réponse invalide du serveur"

type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`

	// Total vient du champ count des réponses paginées côté serveur.
	Total *int `json:"-"`
}

// Normalize applique, dans l'ordre: déballage de data.success, tableau brut,
// results, passage direct.
func Normalize(body []byte) Envelope {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || !gjson.Valid(trimmed) {
		return Envelope{Success: false, Message: defaultFailureMessage, Data: json.RawMessage("null")}
	}

	root := gjson.Parse(trimmed)
	if root.IsArray() {
		return Envelope{Success: true, Data: json.RawMessage(root.Raw)}
	}
	if !root.IsObject() {
		return Envelope{Success: true, Data: json.RawMessage(root.Raw)}
	}

	inner := root.Get("data")
	if inner.IsObject() && inner.Get("success").Exists() {
		env := Normalize([]byte(inner.Raw))
		if env.Message == "" {
			env.Message = messageOf(root)
		}
		return env
	}

	if results := root.Get("results"); results.Exists() {
		return Envelope{Success: true, Message: messageOf(root), Data: json.RawMessage(results.Raw), Total: countOf(root)}
	}

	if flag := root.Get("success"); flag.Exists() {
		env := Envelope{Success: flag.Bool(), Message: messageOf(root), Data: json.RawMessage("null")}
		if inner.Exists() {
			env.Data = json.RawMessage(inner.Raw)
			if inner.IsObject() && inner.Get("results").Exists() {
				env.Data = json.RawMessage(inner.Get("results").Raw)
				env.Total = countOf(inner)
			}
		}
		return env
	}

	return Envelope{Success: true, Data: json.RawMessage(root.Raw)}
}

// Failure construit l'enveloppe d'échec. list indique un appel de liste (data: []).
func Failure(message string, list bool) Envelope {
	data := json.RawMessage("null")
	if list {
		data = json.RawMessage("[]")
	}
	return Envelope{Success: false, Message: message, Data: data}
}

// Message extrait message, detail ou error d'un corps quelconque
func Message(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return messageOf(gjson.ParseBytes(body))
}

func messageOf(r gjson.Result) string {
	for _, key := range []string{"message", "detail", "error"} {
		if v := r.Get(key); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}

func countOf(r gjson.Result) *int {
	c := r.Get("count")
	if !c.Exists() || c.Type != gjson.Number {
		return nil
	}
	n := int(c.Int())
	return &n
}
