package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"gestion-projets-core/internal/infrastructure/metrics"
	"gestion-projets-core/internal/shared/localstore"
)

const localStoragePattern = "local_storage"

// patternKV sous-ensemble de Client utilisé par le stockage local
type patternKV interface {
	GetWithPattern(ctx context.Context, patternName string, identifier ...string) (string, error)
	SetWithPattern(ctx context.Context, patternName string, value interface{}, identifier ...string) error
	DelWithPattern(ctx context.Context, patternName string, identifier ...string) error
	InvalidatePattern(ctx context.Context, domain, scope string) error
}

// LocalStorage range les clés du localStorage de la console dans Redis,
// une clé Redis par clé locale: gestion_projets_{env}_local_storage:{clé}
type LocalStorage struct {
	kv patternKV
}

func NewLocalStorage(client *Client) *LocalStorage {
	return &LocalStorage{kv: client}
}

func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, error) {
	value, err := s.kv.GetWithPattern(ctx, localStoragePattern, key)
	if errors.Is(err, redis.Nil) {
		return "", localstore.ErrNoItem
	}
	metrics.ObserveStore("redis", "get", err)
	return value, err
}

func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	err := s.kv.SetWithPattern(ctx, localStoragePattern, value, key)
	metrics.ObserveStore("redis", "set", err)
	return err
}

func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	err := s.kv.DelWithPattern(ctx, localStoragePattern, key)
	metrics.ObserveStore("redis", "remove", err)
	return err
}

// Clear supprime toutes les clés locales de l'environnement
func (s *LocalStorage) Clear(ctx context.Context) error {
	pattern := RedisKeyPatterns[localStoragePattern]
	return s.kv.InvalidatePattern(ctx, pattern.Domain, pattern.Context)
}
