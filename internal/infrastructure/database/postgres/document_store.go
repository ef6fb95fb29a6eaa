package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gestion-projets-core/internal/infrastructure/metrics"
	"gestion-projets-core/internal/shared/store"
)

const driverName = "postgres"

type txRunner interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

// DocumentStore range les collections locales dans la table console_documents
type DocumentStore struct {
	db  Querier
	txm txRunner
}

func NewDocumentStore(client *Client, txm *TransactionManager) *DocumentStore {
	return &DocumentStore{db: client, txm: txm}
}

// EnsureSchema crée la table si nécessaire
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if err := s.db.Exec(ctx, DocumentQueries.EnsureSchema); err != nil {
		return fmt.Errorf("création du schéma console_documents: %w", err)
	}
	return nil
}

func (s *DocumentStore) All(ctx context.Context, collection string) ([]store.Document, error) {
	rows, err := s.db.Query(ctx, DocumentQueries.List, collection)
	if err != nil {
		metrics.ObserveStore(driverName, "list", err)
		return nil, fmt.Errorf("lecture de %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []store.Document{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("lecture de %s: %w", collection, err)
		}
		docs = append(docs, store.Document{ID: id, Payload: []byte(payload)})
	}
	err = rows.Err()
	metrics.ObserveStore(driverName, "list", err)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", collection, err)
	}
	return docs, nil
}

func (s *DocumentStore) Find(ctx context.Context, collection, id string) (store.Document, error) {
	var docID, payload string
	err := s.db.QueryRow(ctx, DocumentQueries.Find, collection, id).Scan(&docID, &payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Document{}, store.ErrNotFound
	}
	metrics.ObserveStore(driverName, "get", err)
	if err != nil {
		return store.Document{}, fmt.Errorf("lecture de %s/%s: %w", collection, id, err)
	}
	return store.Document{ID: docID, Payload: []byte(payload)}, nil
}

func (s *DocumentStore) Save(ctx context.Context, collection string, doc store.Document) error {
	err := s.db.Exec(ctx, DocumentQueries.Upsert, collection, doc.ID, string(doc.Payload))
	metrics.ObserveStore(driverName, "save", err)
	if err != nil {
		return fmt.Errorf("écriture de %s/%s: %w", collection, doc.ID, err)
	}
	return nil
}

func (s *DocumentStore) Remove(ctx context.Context, collection, id string) error {
	var removed string
	err := s.db.QueryRow(ctx, DocumentQueries.Delete, collection, id).Scan(&removed)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	metrics.ObserveStore(driverName, "remove", err)
	if err != nil {
		return fmt.Errorf("suppression de %s/%s: %w", collection, id, err)
	}
	return nil
}

// Replace réécrit la collection entière dans une seule transaction
func (s *DocumentStore) Replace(ctx context.Context, collection string, docs []store.Document) error {
	err := s.txm.WithTransaction(ctx, func(tx Querier) error {
		if err := tx.Exec(ctx, DocumentQueries.DeleteCollection, collection); err != nil {
			return err
		}
		for _, doc := range docs {
			if err := tx.Exec(ctx, DocumentQueries.Insert, collection, doc.ID, string(doc.Payload)); err != nil {
				return err
			}
		}
		return nil
	})
	metrics.ObserveStore(driverName, "replace", err)
	if err != nil {
		return fmt.Errorf("réécriture de %s: %w", collection, err)
	}
	return nil
}
