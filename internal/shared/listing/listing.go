// Package listing regroupe le filtrage, le tri et la pagination en mémoire des pages de liste.
package listing

import (
	"sort"
	"strings"
	"time"
)

// Tailles de page des écrans de la console.
const (
	DefaultPageSize  = 5
	IncidentPageSize = 8
	ReunionPageSize  = 8
)

// Filter garde les éléments dont au moins un champ contient query, sans tenir compte de la casse.
// Une requête vide renvoie la liste telle quelle.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate accepte les formats de date rencontrés dans les données du backend et du localStorage.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortNewestFirst trie du plus récent au plus ancien.
// Si une seule date manque ou est illisible, l'ordre d'origine est conservé.
func SortNewestFirst[T any](items []T, date func(T) string) []T {
	stamps := make([]time.Time, len(items))
	for i, item := range items {
		t, ok := ParseDate(date(item))
		if !ok {
			return items
		}
		stamps[i] = t
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return stamps[idx[a]].After(stamps[idx[b]])
	})

	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPagination calcule les informations de pagination
func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/limit + 1
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Paginate découpe items[(page-1)*size : page*size], bornes comprises dans la liste.
func Paginate[T any](items []T, page, size int) Page[T] {
	info := NewPagination(page, size, len(items))

	// Au-delà de la dernière page la tranche est vide; (page-1)*limit ne déborde pas.
	start := len(items)
	if info.Page <= info.TotalPages {
		start = (info.Page - 1) * info.Limit
	}
	end := len(items)
	if info.Limit < end-start {
		end = start + info.Limit
	}

	slice := make([]T, end-start)
	copy(slice, items[start:end])
	return Page[T]{Items: slice, Pagination: info}
}

// Query regroupe les paramètres communs des pages de liste.
type Query struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
}

// Apply enchaîne filtre, tri puis pagination.
func Apply[T any](items []T, q Query, size int, fields func(T) []string, date func(T) string) Page[T] {
	filtered := Filter(items, q.Search, fields)
	if date != nil {
		filtered = SortNewestFirst(filtered, date)
	}
	return Paginate(filtered, q.Page, size)
}
