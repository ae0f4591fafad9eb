package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_ReachesExpectedVersion(t *testing.T) {
	store := createTestStore(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx), "re-running migrations must be a no-op")

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrateDown_StepsBackOneVersion(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.MigrateDown(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion-1, version)

	// The transactions table is gone; a listing must now fail.
	_, err = store.ListTransactions(ctx, emptyFilter())
	require.Error(t, err)

	// Reapplying brings the schema back to current.
	require.NoError(t, store.Migrate(ctx))
	version, err = store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrateDown_ToZero(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < ExpectedSchemaVersion; i++ {
		require.NoError(t, store.MigrateDown(ctx))
	}

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	// At version zero another rollback is a no-op.
	require.NoError(t, store.MigrateDown(ctx))
}

func TestMigrateDown_FreshDatabaseIsNoop(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.MigrateDown(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}
