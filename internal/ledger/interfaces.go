// Package ledger implements the core operations of the finance tracker:
// filtered transaction listing, in-memory aggregation, validated mutations,
// and name/id resolution. The presentation layer consumes these operations
// over plain data structures and renders whatever errors they return.
package ledger

import (
	"context"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// Storage defines the persistence contract the ledger operations require.
// *storage.Store satisfies it.
type Storage interface {
	Resolver

	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) (bool, error)

	AccountNames(ctx context.Context) (map[int64]string, error)
	CategoryNames(ctx context.Context) (map[int64]string, error)
}

// Resolver performs the bidirectional name/id lookups used by the filter
// surface and the save path. Name lookups are exact-match, case-sensitive;
// a miss is common.ErrNotFound.
type Resolver interface {
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByName(ctx context.Context, name string) (*model.Account, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
}
