package ledger

import (
	"context"
	"fmt"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// Service exposes the four core operations to the presentation layer:
// list, aggregate, create/update/delete, and name/id resolution. It owns no
// state beyond the store handle; every call is a single synchronous unit of
// work against the store.
type Service struct {
	store Storage
}

// NewService creates a ledger service backed by the given store.
func NewService(store Storage) *Service {
	return &Service{store: store}
}

// List returns transactions matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.store.ListTransactions(ctx, filter)
}

// Get returns the transaction with the given id, or common.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	return s.store.GetTransactionByID(ctx, id)
}

// Create validates the form and inserts exactly one transaction, returning
// the persisted entity with its generated id. On validation failure no write
// occurs; storage failures surface verbatim.
func (s *Service) Create(ctx context.Context, form TransactionForm) (*model.Transaction, error) {
	txn, err := form.Parse(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Update validates the form and rewrites the row with the given id in place.
// The id is immutable and selects the row; all other fields come from the
// form.
func (s *Service) Update(ctx context.Context, id int64, form TransactionForm) (*model.Transaction, error) {
	txn, err := form.Parse(ctx, s.store)
	if err != nil {
		return nil, err
	}
	txn.ID = id
	if err := s.store.UpdateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Delete removes the transaction with the given id. A missing id reports
// found=false rather than an error; no cascading effects.
func (s *Service) Delete(ctx context.Context, id int64) (found bool, err error) {
	return s.store.DeleteTransaction(ctx, id)
}

// Aggregate computes the summary for the given rows, resolving category
// names through one bulk lookup.
func (s *Service) Aggregate(ctx context.Context, rows []model.Transaction) (Summary, error) {
	names, err := s.store.CategoryNames(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load category names: %w", err)
	}
	return Summarize(rows, names), nil
}

// ResolveAccount maps an account name to its id. Exact, case-sensitive
// match; a miss is common.ErrNotFound.
func (s *Service) ResolveAccount(ctx context.Context, name string) (int64, error) {
	account, err := s.store.GetAccountByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return account.ID, nil
}

// ResolveCategory maps a category name to its id. Exact, case-sensitive
// match; a miss is common.ErrNotFound.
func (s *Service) ResolveCategory(ctx context.Context, name string) (int64, error) {
	category, err := s.store.GetCategoryByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

// Names returns the bulk id→name maps for accounts and categories, fetched
// once per call so display paths never do per-row lookups.
func (s *Service) Names(ctx context.Context) (accounts, categories map[int64]string, err error) {
	accounts, err = s.store.AccountNames(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load account names: %w", err)
	}
	categories, err = s.store.CategoryNames(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load category names: %w", err)
	}
	return accounts, categories, nil
}
