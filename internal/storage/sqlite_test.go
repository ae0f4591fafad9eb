package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// createTestStore creates a migrated store on a temp file.
func createTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_EmptyPath(t *testing.T) {
	_, err := NewStore("  ")
	require.Error(t, err)
}

func TestStore_AccountRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	created, err := store.CreateAccount(ctx, "Cash")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := store.GetAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := store.GetAccountByName(ctx, "Cash")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	accounts, err := store.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cash", accounts[0].Name)
}

func TestStore_AccountNameLookupIsCaseSensitive(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "Cash")
	require.NoError(t, err)

	_, err = store.GetAccountByName(ctx, "cash")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_AccountNameUnique(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "Cash")
	require.NoError(t, err)

	_, err = store.CreateAccount(ctx, "Cash")
	require.Error(t, err, "duplicate account name must be rejected by the unique constraint")
}

func TestStore_DeleteAccountNotFound(t *testing.T) {
	store := createTestStore(t)

	err := store.DeleteAccount(context.Background(), 42)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_CategoryRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	food, err := store.CreateCategory(ctx, "Food", model.KindExpense)
	require.NoError(t, err)
	salary, err := store.CreateCategory(ctx, "Salary", model.KindIncome)
	require.NoError(t, err)

	byID, err := store.GetCategoryByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, model.KindExpense, byID.Kind)

	byName, err := store.GetCategoryByName(ctx, "Salary")
	require.NoError(t, err)
	assert.Equal(t, salary.ID, byName.ID)

	all, err := store.GetCategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	income, err := store.GetCategories(ctx, model.KindIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Name)
}

func TestStore_CategoryKindConstraint(t *testing.T) {
	store := createTestStore(t)

	_, err := store.CreateCategory(context.Background(), "Misc", model.Kind("savings"))
	require.Error(t, err, "kind outside income/expense must be rejected")
}

func TestStore_BulkNameMaps(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	acc, err := store.CreateAccount(ctx, "Bank Account")
	require.NoError(t, err)
	cat, err := store.CreateCategory(ctx, "Rent", model.KindExpense)
	require.NoError(t, err)

	accountNames, err := store.AccountNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{acc.ID: "Bank Account"}, accountNames)

	categoryNames, err := store.CategoryNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{cat.ID: "Rent"}, categoryNames)
}
