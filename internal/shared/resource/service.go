// Package resource fournit le service et le contrôleur génériques d'une collection de la console.
package resource

import (
	"context"
	"errors"

	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/ident"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/store"
)

// Item est implémenté par les modèles exposés en liste
type Item[T any] interface {
	store.Entity[T]
	SearchFields() []string
	SortDate() string
}

// Options paramètre une collection
type Options[T any] struct {
	// NotFound message renvoyé pour un identifiant inconnu ("Projet non trouvé")
	NotFound string
	PageSize int
	// Check contrôles métier au-delà des tags validate, par champ JSON
	Check func(T) map[string]string
	// BeforeSave transforme l'élément juste avant l'écriture
	BeforeSave func(ctx context.Context, item T) (T, error)
}

type Service[T Item[T]] struct {
	store store.Store[T]
	opts  Options[T]
}

func NewService[T Item[T]](s store.Store[T], opts Options[T]) *Service[T] {
	if opts.PageSize < 1 {
		opts.PageSize = listing.DefaultPageSize
	}
	if opts.NotFound == "" {
		opts.NotFound = "Élément non trouvé"
	}
	return &Service[T]{store: s, opts: opts}
}

func (s *Service[T]) Store() store.Store[T] {
	return s.store
}

func (s *Service[T]) PageSize() int {
	return s.opts.PageSize
}

// All renvoie la collection complète, sans filtre ni tri
func (s *Service[T]) All(ctx context.Context) ([]T, error) {
	return s.store.List(ctx)
}

// List filtre, trie du plus récent au plus ancien puis pagine
func (s *Service[T]) List(ctx context.Context, q listing.Query) (listing.Page[T], error) {
	return s.ListWhere(ctx, q, nil)
}

// ListWhere comme List, restreint aux éléments retenus par keep
func (s *Service[T]) ListWhere(ctx context.Context, q listing.Query, keep func(T) bool) (listing.Page[T], error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return listing.Page[T]{}, err
	}
	if keep != nil {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if keep(item) {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	return s.Page(items, q), nil
}

// Page applique le pipeline de liste à des éléments déjà chargés
func (s *Service[T]) Page(items []T, q listing.Query) listing.Page[T] {
	return listing.Apply(items, q, s.opts.PageSize,
		func(item T) []string { return item.SearchFields() },
		func(item T) string { return item.SortDate() },
	)
}

func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return item, s.translate(err)
	}
	return item, nil
}

// Create ignore l'identifiant fourni: le dépôt en attribue un
func (s *Service[T]) Create(ctx context.Context, item T) (T, error) {
	return s.save(ctx, item.WithID(ident.ID{}))
}

// Update remplace l'élément existant; l'identifiant du chemin prévaut sur celui du corps
func (s *Service[T]) Update(ctx context.Context, id string, item T) (T, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return item, err
	}
	return s.save(ctx, item.WithID(existing.GetID()))
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	return s.translate(s.store.Delete(ctx, id))
}

func (s *Service[T]) save(ctx context.Context, item T) (T, error) {
	if s.opts.Check != nil {
		if champs := s.opts.Check(item); len(champs) > 0 {
			return item, apperror.Validation("Erreur de validation", champs)
		}
	}
	if s.opts.BeforeSave != nil {
		var err error
		if item, err = s.opts.BeforeSave(ctx, item); err != nil {
			return item, err
		}
	}

	saved, err := s.store.Put(ctx, item)
	if err != nil {
		return item, s.translate(err)
	}
	return saved, nil
}

func (s *Service[T]) translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound(s.opts.NotFound)
	}
	return err
}
