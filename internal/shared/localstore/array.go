package localstore

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"gestion-projets-core/internal/shared/store"
)

// ArrayDocuments range chaque collection comme un tableau JSON sous une clé du LocalStorage.
// Chaque écriture relit le tableau complet, le modifie puis le réécrit.
// Les éléments non modifiés sont réécrits octet pour octet.
type ArrayDocuments struct {
	storage LocalStorage
	mu      sync.Mutex
}

func NewArrayDocuments(storage LocalStorage) *ArrayDocuments {
	return &ArrayDocuments{storage: storage}
}

func (a *ArrayDocuments) read(ctx context.Context, collection string) ([]store.Document, error) {
	raw, err := a.storage.GetItem(ctx, collection)
	if errors.Is(err, ErrNoItem) {
		return []store.Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == "" || raw == "null" {
		return []store.Document{}, nil
	}

	var elements []stdjson.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("la clé %s ne contient pas un tableau JSON: %w", collection, err)
	}

	field := IDField(collection)
	docs := make([]store.Document, 0, len(elements))
	for _, el := range elements {
		docs = append(docs, store.Document{
			ID:      gjson.GetBytes(el, field).String(),
			Payload: []byte(el),
		})
	}
	return docs, nil
}

func (a *ArrayDocuments) write(ctx context.Context, collection string, docs []store.Document) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(doc.Payload)
	}
	buf.WriteByte(']')
	return a.storage.SetItem(ctx, collection, buf.String())
}

func (a *ArrayDocuments) All(ctx context.Context, collection string) ([]store.Document, error) {
	return a.read(ctx, collection)
}

func (a *ArrayDocuments) Find(ctx context.Context, collection, id string) (store.Document, error) {
	docs, err := a.read(ctx, collection)
	if err != nil {
		return store.Document{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return store.Document{}, store.ErrNotFound
}

func (a *ArrayDocuments) Save(ctx context.Context, collection string, doc store.Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	docs, err := a.read(ctx, collection)
	if err != nil {
		return err
	}

	replaced := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		docs = append(docs, doc)
	}
	return a.write(ctx, collection, docs)
}

func (a *ArrayDocuments) Remove(ctx context.Context, collection, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	docs, err := a.read(ctx, collection)
	if err != nil {
		return err
	}

	kept := docs[:0]
	for _, doc := range docs {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	if len(kept) == len(docs) {
		return store.ErrNotFound
	}
	return a.write(ctx, collection, kept)
}

func (a *ArrayDocuments) Replace(ctx context.Context, collection string, docs []store.Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.write(ctx, collection, docs)
}
