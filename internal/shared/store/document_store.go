package store

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"gestion-projets-core/internal/shared/ident"
)

// DocumentStore adapte un stockage Documents en Store typé.
type DocumentStore[T Entity[T]] struct {
	docs       Documents
	collection string
}

func NewDocumentStore[T Entity[T]](docs Documents, collection string) *DocumentStore[T] {
	return &DocumentStore[T]{docs: docs, collection: collection}
}

func (s *DocumentStore[T]) Collection() string {
	return s.collection
}

func (s *DocumentStore[T]) List(ctx context.Context) ([]T, error) {
	docs, err := s.docs.All(ctx, s.collection)
	if err != nil {
		return nil, fmt.Errorf("lecture collection %s: %w", s.collection, err)
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc.Payload, &item); err != nil {
			return nil, fmt.Errorf("élément %s de %s illisible: %w", doc.ID, s.collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *DocumentStore[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	doc, err := s.docs.Find(ctx, s.collection, id)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(doc.Payload, &item); err != nil {
		return item, fmt.Errorf("élément %s de %s illisible: %w", id, s.collection, err)
	}
	return item, nil
}

func (s *DocumentStore[T]) Put(ctx context.Context, item T) (T, error) {
	if item.GetID().IsZero() {
		item = item.WithID(ident.New())
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("sérialisation élément %s: %w", item.GetID(), err)
	}

	if err := s.docs.Save(ctx, s.collection, Document{ID: item.GetID().String(), Payload: payload}); err != nil {
		return item, fmt.Errorf("écriture collection %s: %w", s.collection, err)
	}
	return item, nil
}

func (s *DocumentStore[T]) Delete(ctx context.Context, id string) error {
	return s.docs.Remove(ctx, s.collection, id)
}
