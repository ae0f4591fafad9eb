package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// stubResolver serves a fixed set of accounts and categories from memory.
type stubResolver struct {
	accounts   []model.Account
	categories []model.Category
}

func (s *stubResolver) GetAccountByID(_ context.Context, id int64) (*model.Account, error) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubResolver) GetAccountByName(_ context.Context, name string) (*model.Account, error) {
	for i := range s.accounts {
		if s.accounts[i].Name == name {
			return &s.accounts[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubResolver) GetCategoryByID(_ context.Context, id int64) (*model.Category, error) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubResolver) GetCategoryByName(_ context.Context, name string) (*model.Category, error) {
	for i := range s.categories {
		if s.categories[i].Name == name {
			return &s.categories[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func testResolver() *stubResolver {
	return &stubResolver{
		accounts: []model.Account{
			{ID: 1, Name: "Cash"},
			{ID: 2, Name: "Bank Account"},
		},
		categories: []model.Category{
			{ID: 1, Name: "Salary", Kind: model.KindIncome},
			{ID: 2, Name: "Food", Kind: model.KindExpense},
		},
	}
}

func TestTransactionForm_Parse(t *testing.T) {
	ctx := context.Background()
	res := testResolver()

	form := TransactionForm{
		Date:     "2024-01-10",
		Amount:   "50.00",
		Kind:     "expense",
		Account:  "Cash",
		Category: "Food",
		Notes:    "  groceries  ",
	}

	txn, err := form.Parse(ctx, res)
	require.NoError(t, err)

	assert.True(t, txn.Date.Equal(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "50", txn.Amount.String())
	assert.Equal(t, model.KindExpense, txn.Kind)
	assert.Equal(t, int64(1), txn.AccountID)
	assert.Equal(t, int64(2), txn.CategoryID)
	assert.Equal(t, "groceries", txn.Notes, "notes are trimmed")
}

func TestTransactionForm_Parse_NumericReferences(t *testing.T) {
	ctx := context.Background()
	res := testResolver()

	form := TransactionForm{
		Date:     "2024-01-15",
		Amount:   "1000",
		Kind:     "income",
		Account:  "2",
		Category: "1",
	}

	txn, err := form.Parse(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, int64(2), txn.AccountID)
	assert.Equal(t, int64(1), txn.CategoryID)
}

func TestTransactionForm_Parse_Rejections(t *testing.T) {
	valid := TransactionForm{
		Date:     "2024-01-10",
		Amount:   "50.00",
		Kind:     "expense",
		Account:  "Cash",
		Category: "Food",
	}

	tests := []struct {
		name   string
		mutate func(*TransactionForm)
		field  string
	}{
		{
			name:   "negative amount",
			mutate: func(f *TransactionForm) { f.Amount = "-5.00" },
			field:  "amount",
		},
		{
			name:   "too many decimal places",
			mutate: func(f *TransactionForm) { f.Amount = "1.005" },
			field:  "amount",
		},
		{
			name:   "non-numeric amount",
			mutate: func(f *TransactionForm) { f.Amount = "fifty" },
			field:  "amount",
		},
		{
			name:   "empty amount",
			mutate: func(f *TransactionForm) { f.Amount = "" },
			field:  "amount",
		},
		{
			name:   "garbage date",
			mutate: func(f *TransactionForm) { f.Date = "2024-13-40" },
			field:  "date",
		},
		{
			name:   "wrong date layout",
			mutate: func(f *TransactionForm) { f.Date = "10/01/2024" },
			field:  "date",
		},
		{
			name:   "unknown type",
			mutate: func(f *TransactionForm) { f.Kind = "savings" },
			field:  "type",
		},
		{
			name:   "unknown account",
			mutate: func(f *TransactionForm) { f.Account = "Vault" },
			field:  "account",
		},
		{
			name:   "unknown account id",
			mutate: func(f *TransactionForm) { f.Account = "42" },
			field:  "account",
		},
		{
			name:   "unknown category",
			mutate: func(f *TransactionForm) { f.Category = "Misc" },
			field:  "category",
		},
		{
			name:   "category kind mismatch",
			mutate: func(f *TransactionForm) { f.Category = "Salary" },
			field:  "category",
		},
		{
			name:   "empty account",
			mutate: func(f *TransactionForm) { f.Account = "" },
			field:  "account",
		},
		{
			name:   "empty category",
			mutate: func(f *TransactionForm) { f.Category = "" },
			field:  "category",
		},
		{
			name:   "oversized notes",
			mutate: func(f *TransactionForm) { f.Notes = strings.Repeat("x", model.MaxNotesLength+1) },
			field:  "notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			txn, err := form.Parse(context.Background(), testResolver())
			require.Error(t, err)
			assert.Nil(t, txn)
			assert.True(t, IsValidationError(err), "expected a validation error, got %v", err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestTransactionForm_Parse_ZeroAmountAllowed(t *testing.T) {
	form := TransactionForm{
		Date:     "2024-01-10",
		Amount:   "0.00",
		Kind:     "expense",
		Account:  "Cash",
		Category: "Food",
	}

	txn, err := form.Parse(context.Background(), testResolver())
	require.NoError(t, err)
	assert.True(t, txn.Amount.IsZero())
}
