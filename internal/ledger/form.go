package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// ValidationError reports which form field is wrong and why. It is always
// raised before any write, so a failed validation never leaves a partial row.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransactionForm carries raw user input for creating or updating a
// transaction. The same validation path backs both operations.
type TransactionForm struct {
	Date     string // YYYY-MM-DD
	Amount   string // non-negative decimal, at most two decimal places
	Kind     string // income | expense
	Account  string // account name or numeric id
	Category string // category name or numeric id
	Notes    string // optional, at most 255 characters
}

// Parse validates every field and resolves the account and category
// references, returning the transaction ready to persist. The first invalid
// field aborts with a *ValidationError naming it; nothing is written.
func (f TransactionForm) Parse(ctx context.Context, res Resolver) (*model.Transaction, error) {
	kind, err := model.ParseKind(strings.TrimSpace(f.Kind))
	if err != nil {
		return nil, &ValidationError{Field: "type", Reason: err.Error()}
	}

	amount, err := parseAmount(f.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Reason: err.Error()}
	}

	date, err := time.Parse(model.DateFormat, strings.TrimSpace(f.Date))
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a valid %s date", f.Date, model.DateFormat)}
	}

	account, err := resolveAccount(ctx, res, f.Account)
	if err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, res, f.Category)
	if err != nil {
		return nil, err
	}
	if category.Kind != kind {
		return nil, &ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("category %q is an %s category, transaction is %s", category.Name, category.Kind, kind),
		}
	}

	notes := strings.TrimSpace(f.Notes)
	if len(notes) > model.MaxNotesLength {
		return nil, &ValidationError{Field: "notes", Reason: fmt.Sprintf("must be at most %d characters", model.MaxNotesLength)}
	}

	return &model.Transaction{
		Date:       date,
		Amount:     amount,
		Kind:       kind,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Notes:      notes,
	}, nil
}

// parseAmount parses a non-negative fixed-point decimal at scale 2.
func parseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errors.New("amount is required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid decimal amount", raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.New("amount must be non-negative")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, errors.New("amount must have at most two decimal places")
	}
	return amount, nil
}

func resolveAccount(ctx context.Context, res Resolver, ref string) (*model.Account, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &ValidationError{Field: "account", Reason: "account is required"}
	}

	var account *model.Account
	var err error
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		account, err = res.GetAccountByID(ctx, id)
	} else {
		account, err = res.GetAccountByName(ctx, ref)
	}

	if errors.Is(err, common.ErrNotFound) {
		return nil, &ValidationError{Field: "account", Reason: fmt.Sprintf("account %q does not exist", ref)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	return account, nil
}

func resolveCategory(ctx context.Context, res Resolver, ref string) (*model.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &ValidationError{Field: "category", Reason: "category is required"}
	}

	var category *model.Category
	var err error
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		category, err = res.GetCategoryByID(ctx, id)
	} else {
		category, err = res.GetCategoryByName(ctx, ref)
	}

	if errors.Is(err, common.ErrNotFound) {
		return nil, &ValidationError{Field: "category", Reason: fmt.Sprintf("category %q does not exist", ref)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}
