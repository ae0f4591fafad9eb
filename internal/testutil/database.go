// Package testutil provides database bootstrap helpers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
	"github.com/mircothibes/personal-finance-tracker/internal/storage"
)

// SetupStore creates a migrated in-memory store and registers its cleanup.
func SetupStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(":memory:")
	require.NoError(t, err, "failed to create test database")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to run migrations")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedBasic inserts the default accounts and categories and returns their
// ids keyed by name.
func SeedBasic(t *testing.T, store *storage.Store) map[string]int64 {
	t.Helper()
	ctx := context.Background()

	ids := make(map[string]int64)
	for _, name := range []string{"Cash", "Bank Account"} {
		acc, err := store.CreateAccount(ctx, name)
		require.NoError(t, err, "failed to seed account %q", name)
		ids[name] = acc.ID
	}

	categories := []struct {
		name string
		kind model.Kind
	}{
		{"Salary", model.KindIncome},
		{"Bonus", model.KindIncome},
		{"Food", model.KindExpense},
		{"Rent", model.KindExpense},
	}
	for _, c := range categories {
		cat, err := store.CreateCategory(ctx, c.name, c.kind)
		require.NoError(t, err, "failed to seed category %q", c.name)
		ids[c.name] = cat.ID
	}

	return ids
}
