package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/database/seeds"
	"gestion-projets-core/internal/shared/localstore"
)

type fakeStep struct {
	err   error
	calls int
}

func (f *fakeStep) Ping(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeStep) EnsureSchema(context.Context) error {
	f.calls++
	return f.err
}

func writeDump(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newSystem(backend, schema *fakeStep, storage localstore.LocalStorage, seedPath string) *BootstrapSystem {
	cfg := &config.Config{Store: config.StoreConfig{SeedPath: seedPath}}
	seeding := NewSeedingManager(seeds.NewSeedingService(storage, localstore.NewArrayDocuments(storage), zap.NewNop()), cfg, zap.NewNop())
	return NewBootstrapSystem(backend, schema, seeding, zap.NewNop())
}

func TestBootstrapImportsSeedIntoEmptyStorage(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	path := writeDump(t, `{"projects":"[{\"id\":1,\"nom\":\"Route\"}]","appLanguage":"fr"}`)
	backend, schema := &fakeStep{}, &fakeStep{}

	result, err := newSystem(backend, schema, storage, path).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.PhasesExecuted, 3)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, 1, schema.calls)

	projects, err := storage.GetItem(context.Background(), localstore.Projects)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"nom":"Route"}]`, projects)
}

func TestBootstrapKeepsExistingData(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	require.NoError(t, storage.SetItem(context.Background(), localstore.Projects, `[{"id":9}]`))
	path := writeDump(t, `{"projects":[{"id":1}],"appLanguage":"fr"}`)

	_, err := newSystem(&fakeStep{}, &fakeStep{}, storage, path).Execute(context.Background())
	require.NoError(t, err)

	projects, _ := storage.GetItem(context.Background(), localstore.Projects)
	assert.Equal(t, `[{"id":9}]`, projects)
	_, err = storage.GetItem(context.Background(), localstore.AppLanguage)
	assert.ErrorIs(t, err, localstore.ErrNoItem)
}

func TestBootstrapBackendFailureIsNotBlocking(t *testing.T) {
	backend := &fakeStep{err: errors.New("connection refused")}

	result, err := newSystem(backend, &fakeStep{}, localstore.NewMemoryStorage(), "").Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.PhasesExecuted[0].Success)
	assert.Equal(t, "connection refused", result.PhasesExecuted[0].Error)
}

func TestBootstrapStopsOnSchemaFailure(t *testing.T) {
	schema := &fakeStep{err: errors.New("permission denied for schema public")}

	result, err := newSystem(&fakeStep{}, schema, localstore.NewMemoryStorage(), "").Execute(context.Background())
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Len(t, result.PhasesExecuted, 2)
	assert.Contains(t, result.ErrorMessage, "Phase 1")
}

func TestBootstrapFailsOnUnreadableSeed(t *testing.T) {
	path := writeDump(t, `{"projects":`)

	_, err := newSystem(&fakeStep{}, &fakeStep{}, localstore.NewMemoryStorage(), path).Execute(context.Background())
	assert.Error(t, err)
}
