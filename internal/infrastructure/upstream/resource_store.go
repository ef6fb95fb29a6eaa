package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gestion-projets-core/internal/shared/envelope"
	"gestion-projets-core/internal/shared/store"
)

// Resource décrit une collection du backend.
// ItemPath contient {id}, par exemple "/reunions/{id}".
type Resource struct {
	Name     string
	ListPath string
	ItemPath string
}

func (r Resource) item(id string) string {
	return strings.ReplaceAll(r.ItemPath, "{id}", url.PathEscape(id))
}

// ResourceStore implémente store.Store sur une collection REST
type ResourceStore[T store.Entity[T]] struct {
	client   *Client
	resource Resource
}

func NewResourceStore[T store.Entity[T]](client *Client, resource Resource) *ResourceStore[T] {
	return &ResourceStore[T]{client: client, resource: resource}
}

func (s *ResourceStore[T]) Resource() Resource {
	return s.resource
}

func (s *ResourceStore[T]) List(ctx context.Context) ([]T, error) {
	items, _, err := s.ListPage(ctx, 0)
	return items, err
}

// ListPage transmet page au backend tel quel (0 = pas de pagination).
// total vient du champ count quand le backend pagine.
func (s *ResourceStore[T]) ListPage(ctx context.Context, page int) ([]T, *int, error) {
	var query url.Values
	if page > 0 {
		query = url.Values{"page": []string{strconv.Itoa(page)}}
	}

	resp, err := s.client.Get(ctx, s.resource.ListPath, query)
	if err != nil {
		return nil, nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, nil, err
	}

	env := resp.Envelope()
	items, err := envelope.Decode[[]T](env).Unwrap()
	if err != nil {
		return nil, nil, fmt.Errorf("liste %s: %w", s.resource.Name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, env.Total, nil
}

func (s *ResourceStore[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	resp, err := s.client.Get(ctx, s.resource.item(id), nil)
	if err != nil {
		return zero, err
	}
	if resp.Status == http.StatusNotFound {
		return zero, store.ErrNotFound
	}
	if err := resp.Err(); err != nil {
		return zero, err
	}
	return envelope.Decode[T](resp.Envelope()).Unwrap()
}

// Put crée par POST sur la collection ou remplace par PUT sur l'élément
func (s *ResourceStore[T]) Put(ctx context.Context, item T) (T, error) {
	var (
		resp *Response
		err  error
	)
	if item.GetID().IsZero() {
		resp, err = s.client.Post(ctx, s.resource.ListPath, item)
	} else {
		resp, err = s.client.Put(ctx, s.resource.item(item.GetID().String()), item)
	}
	if err != nil {
		return item, err
	}
	if resp.Status == http.StatusNotFound {
		return item, store.ErrNotFound
	}
	if err := resp.Err(); err != nil {
		return item, err
	}

	saved, err := envelope.Decode[T](resp.Envelope()).Unwrap()
	if err != nil || saved.GetID().IsZero() {
		// Certains endpoints ne renvoient qu'un message
		return item, nil
	}
	return saved, nil
}

func (s *ResourceStore[T]) Delete(ctx context.Context, id string) error {
	resp, err := s.client.Del(ctx, s.resource.item(id))
	if err != nil {
		return err
	}
	if resp.Status == http.StatusNotFound {
		return store.ErrNotFound
	}
	return resp.Err()
}
