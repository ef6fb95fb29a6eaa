package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion-projets-core/internal/shared/localstore"
)

func TestImportedToken(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	ctx := context.Background()

	assert.Empty(t, importedToken(ctx, storage))

	require.NoError(t, storage.SetItem(ctx, localstore.Token, ` "jeton-importe" `))
	assert.Equal(t, "jeton-importe", importedToken(ctx, storage))
}

func TestEntityNamesAreSorted(t *testing.T) {
	names := entityNames()

	assert.Len(t, names, len(listers))
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "maitres-ouvrage")
}
