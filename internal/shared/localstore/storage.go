// Package localstore reproduit le localStorage de la console: des clés nommées dont la valeur est un texte JSON.
package localstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNoItem est renvoyée par GetItem pour une clé absente.
var ErrNoItem = errors.New("clé absente du stockage local")

// Clés utilisées par la console. Elles tiennent lieu de schéma.
const (
	Projects          = "projects"
	SubProjects       = "subProjects"
	Incidents         = "incidents"
	IncidentFollowUps = "incidentFollowUps"
	Meetings          = "meetings"
	Marches           = "marches"
	MaitreOuvrages    = "maitreOuvrages"
	Invoices          = "invoices"
	Users             = "users"
	Token             = "token"
	AppLanguage       = "appLanguage"
	DeletedReunions   = "deletedReunions"
)

// Session donne la clé d'une session ouverte par /auth/login.
func Session(id string) string {
	return "session_" + id
}

// ReunionOverride donne la clé d'une réunion modifiée hors ligne.
func ReunionOverride(id string) string {
	return "reunion_" + id
}

// IDFields indique le champ identifiant des collections qui n'utilisent pas "id".
var IDFields = map[string]string{
	Invoices: "id_facture",
}

// IDField renvoie le champ identifiant d'une collection
func IDField(collection string) string {
	if f, ok := IDFields[collection]; ok {
		return f
	}
	return "id"
}

type LocalStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Clearer vide toutes les clés d'un stockage local
type Clearer interface {
	Clear(ctx context.Context) error
}

type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (m *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return "", ErrNoItem
	}
	return v, nil
}

func (m *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *MemoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]string)
	return nil
}
