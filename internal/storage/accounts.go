package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// CreateAccount inserts a new account with the given name.
func (s *Store) CreateAccount(ctx context.Context, name string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `INSERT INTO accounts (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get account ID: %w", err)
	}

	slog.Info("created account", "name", name, "id", id)
	return &model.Account{ID: id, Name: name}, nil
}

// GetAccounts returns all accounts ordered by name.
func (s *Store) GetAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM accounts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// GetAccountByID returns the account with the given id, or common.ErrNotFound.
func (s *Store) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var acc model.Account
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM accounts WHERE id = ?`, id).
		Scan(&acc.ID, &acc.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &acc, nil
}

// GetAccountByName returns the account with the given name. The match is
// exact and case-sensitive; a miss is common.ErrNotFound.
func (s *Store) GetAccountByName(ctx context.Context, name string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var acc model.Account
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM accounts WHERE name = ?`, name).
		Scan(&acc.ID, &acc.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &acc, nil
}

// AccountNames returns the id→name mapping for all accounts in one query,
// for callers that resolve many rows at once.
func (s *Store) AccountNames(ctx context.Context) (map[int64]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan account name: %w", err)
		}
		names[id] = name
	}

	return names, rows.Err()
}

// DeleteAccount removes an account. The database rejects the delete with a
// foreign key error if any transaction still references the account; that
// error is surfaced verbatim. A missing id is common.ErrNotFound.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	slog.Info("deleted account", "id", id)
	return nil
}
