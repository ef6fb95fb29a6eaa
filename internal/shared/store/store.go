// Package store définit le dépôt injecté dans les services à la place des accès directs au localStorage.
package store

import (
	"context"
	"errors"

	"gestion-projets-core/internal/shared/ident"
)

var ErrNotFound = errors.New("élément introuvable")

// Entity est implémenté par les modèles. WithID renvoie une copie portant l'identifiant donné.
type Entity[T any] interface {
	GetID() ident.ID
	WithID(ident.ID) T
}

// Store est le dépôt d'une collection.
// Put crée l'élément quand son identifiant est vide, sinon le remplace.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Document est un élément sérialisé d'une collection.
type Document struct {
	ID      string
	Payload []byte
}

// Documents est le stockage brut partagé par les backends locaux (localStorage mémoire ou Redis, PostgreSQL, MongoDB).
// All renvoie les documents dans leur ordre d'insertion.
type Documents interface {
	All(ctx context.Context, collection string) ([]Document, error)
	Find(ctx context.Context, collection, id string) (Document, error)
	Save(ctx context.Context, collection string, doc Document) error
	Remove(ctx context.Context, collection, id string) error
	Replace(ctx context.Context, collection string, docs []Document) error
}
