package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidID          = errors.New("id must be positive")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidKind        = errors.New("kind must be income or expense")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a surrogate id is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}

// validateName ensures a display name is non-empty and within bounds.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > model.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, model.MaxNameLength)
	}
	return nil
}

// validateTransaction validates a transaction before any write.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidTransaction)
	}
	if !txn.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, txn.Kind)
	}
	if txn.AccountID <= 0 {
		return fmt.Errorf("%w: missing account", ErrInvalidTransaction)
	}
	if txn.CategoryID <= 0 {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if len(txn.Notes) > model.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidTransaction, model.MaxNotesLength)
	}
	return nil
}
