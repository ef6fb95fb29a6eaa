package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"gestion-projets-core/internal/shared/store"
)

// KeyValueCollection reçoit les clés isolées (token, appLanguage, reunion_{id}...) quand le backend est une base documentaire.
const KeyValueCollection = "localStorage"

// DocumentStorage expose un stockage Documents comme un LocalStorage.
// La valeur est enregistrée comme chaîne JSON, le texte d'origine n'étant pas toujours du JSON.
type DocumentStorage struct {
	docs store.Documents
}

func NewDocumentStorage(docs store.Documents) *DocumentStorage {
	return &DocumentStorage{docs: docs}
}

func (d *DocumentStorage) GetItem(ctx context.Context, key string) (string, error) {
	doc, err := d.docs.Find(ctx, KeyValueCollection, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNoItem
	}
	if err != nil {
		return "", err
	}

	var value string
	if err := json.Unmarshal(doc.Payload, &value); err != nil {
		return "", fmt.Errorf("valeur de %s illisible: %w", key, err)
	}
	return value, nil
}

func (d *DocumentStorage) SetItem(ctx context.Context, key, value string) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return d.docs.Save(ctx, KeyValueCollection, store.Document{ID: key, Payload: payload})
}

func (d *DocumentStorage) RemoveItem(ctx context.Context, key string) error {
	err := d.docs.Remove(ctx, KeyValueCollection, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// Clear vide la collection des clés isolées; les collections d'entités restent intactes
func (d *DocumentStorage) Clear(ctx context.Context) error {
	return d.docs.Replace(ctx, KeyValueCollection, nil)
}
