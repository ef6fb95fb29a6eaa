package redis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion-projets-core/internal/shared/localstore"
)

// fakeKV reproduit Client sur une map, avec les vraies clés générées
type fakeKV struct {
	keys *RedisKeyGenerator
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{keys: NewRedisKeyGenerator("test"), data: map[string]string{}}
}

func (f *fakeKV) GetWithPattern(_ context.Context, patternName string, identifier ...string) (string, error) {
	key, err := f.keys.GenerateKey(patternName, identifier...)
	if err != nil {
		return "", err
	}
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeKV) SetWithPattern(_ context.Context, patternName string, value interface{}, identifier ...string) error {
	key, err := f.keys.GenerateKey(patternName, identifier...)
	if err != nil {
		return err
	}
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) DelWithPattern(_ context.Context, patternName string, identifier ...string) error {
	key, err := f.keys.GenerateKey(patternName, identifier...)
	if err != nil {
		return err
	}
	delete(f.data, key)
	return nil
}

func (f *fakeKV) InvalidatePattern(_ context.Context, domain, scope string) error {
	prefix := strings.TrimSuffix(f.keys.GenerateWildcardPattern(domain, scope), "*")
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			delete(f.data, key)
		}
	}
	return nil
}

func TestGenerateKey(t *testing.T) {
	keys := NewRedisKeyGenerator("docker")

	key, err := keys.GenerateKey("local_storage", "projects")
	require.NoError(t, err)
	assert.Equal(t, "gestion_projets_docker_local_storage:projects", key)
	assert.NoError(t, keys.ValidateKey(key))

	_, err = keys.GenerateKey("inconnu", "x")
	assert.Error(t, err)

	_, err = NewRedisKeyGenerator("Prod Env").GenerateKey("local_storage", "projects")
	assert.Error(t, err)

	_, err = keys.GenerateKey("local_storage", "clé avec espace")
	assert.Error(t, err)

	key, err = keys.GenerateKey("local_storage", "reunion_12")
	require.NoError(t, err)
	assert.Equal(t, "gestion_projets_docker_local_storage:reunion_12", key)

	assert.Equal(t, "gestion_projets_docker_local_storage*", keys.GenerateWildcardPattern("local", "storage"))
}

func TestValidateKey(t *testing.T) {
	keys := NewRedisKeyGenerator("docker")

	assert.Error(t, keys.ValidateKey(""))
	assert.Error(t, keys.ValidateKey("autre_prefixe:x"))
	assert.Error(t, keys.ValidateKey("gestion_projets_docker:x"))
	assert.Error(t, keys.ValidateKey("gestion_projets_docker_local_storage:clé avec espace"))
	assert.Error(t, keys.ValidateKey("gestion_projets_"+strings.Repeat("a", 250)))
}

func TestLocalStorage(t *testing.T) {
	kv := newFakeKV()
	s := &LocalStorage{kv: kv}
	ctx := context.Background()

	_, err := s.GetItem(ctx, localstore.Projects)
	assert.True(t, errors.Is(err, localstore.ErrNoItem))

	require.NoError(t, s.SetItem(ctx, localstore.Projects, `[{"id":1}]`))
	assert.Contains(t, kv.data, "gestion_projets_test_local_storage:projects")

	value, err := s.GetItem(ctx, localstore.Projects)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, value)

	require.NoError(t, s.RemoveItem(ctx, localstore.Projects))
	_, err = s.GetItem(ctx, localstore.Projects)
	assert.ErrorIs(t, err, localstore.ErrNoItem)
}

func TestLocalStorageClear(t *testing.T) {
	kv := newFakeKV()
	kv.data["gestion_projets_test_cache_dashboard:admin"] = "{}"
	var s localstore.Clearer = &LocalStorage{kv: kv}
	ctx := context.Background()
	storage := s.(localstore.LocalStorage)

	require.NoError(t, storage.SetItem(ctx, localstore.Projects, `[]`))
	require.NoError(t, storage.SetItem(ctx, localstore.Token, `abc`))
	require.NoError(t, s.Clear(ctx))

	assert.Len(t, kv.data, 1)
	assert.Contains(t, kv.data, "gestion_projets_test_cache_dashboard:admin")
}
