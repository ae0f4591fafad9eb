package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// CreateTransaction inserts a single transaction and fills in its generated
// id. The insert is one atomic statement; constraint violations (bad foreign
// keys, negative amounts) surface verbatim from the database.
func (s *Store) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (date, amount, type, category_id, account_id, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		txn.Date.Format(model.DateFormat),
		txn.Amount.StringFixed(2),
		string(txn.Kind),
		txn.CategoryID,
		txn.AccountID,
		notesValue(txn.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transaction ID: %w", err)
	}
	txn.ID = id

	slog.Debug("created transaction", "id", id, "kind", txn.Kind, "amount", txn.Amount)
	return nil
}

// UpdateTransaction rewrites the row selected by the transaction's immutable
// id. A missing id is common.ErrNotFound.
func (s *Store) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn != nil {
		if err := validateID(txn.ID, "txn.ID"); err != nil {
			return err
		}
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET date = ?, amount = ?, type = ?, category_id = ?, account_id = ?, notes = ?
		WHERE id = ?
	`,
		txn.Date.Format(model.DateFormat),
		txn.Amount.StringFixed(2),
		string(txn.Kind),
		txn.CategoryID,
		txn.AccountID,
		notesValue(txn.Notes),
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	slog.Debug("updated transaction", "id", txn.ID)
	return nil
}

// DeleteTransaction removes the transaction with the given id. A missing id
// is a negative result, not an error: found reports whether a row existed.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) (found bool, err error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateID(id, "id"); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	slog.Debug("deleted transaction", "id", id)
	return true, nil
}

// GetTransactionByID retrieves a single transaction, or common.ErrNotFound.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, amount, type, category_id, account_id, notes
		FROM transactions
		WHERE id = ?
	`, id)

	txn, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns transactions matching the filter. Supplied filter
// fields narrow the result with AND; omitted fields impose no constraint.
// Rows come back ordered by date descending, then id descending, so
// same-day entries appear most-recently-added first. No rows is an empty
// slice, never an error.
func (s *Store) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, amount, type, category_id, account_id, notes
		FROM transactions`

	var conds []string
	var args []any

	if filter.Kind != "" {
		if !filter.Kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, filter.Kind)
		}
		conds = append(conds, "type = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.CategoryID != 0 {
		conds = append(conds, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.AccountID != 0 {
		conds = append(conds, "account_id = ?")
		args = append(args, filter.AccountID)
	}
	if filter.DateFrom != nil {
		conds = append(conds, "date >= ?")
		args = append(args, filter.DateFrom.Format(model.DateFormat))
	}
	if filter.DateTo != nil {
		conds = append(conds, "date <= ?")
		args = append(args, filter.DateTo.Format(model.DateFormat))
	}
	if filter.NotesQuery != "" {
		// NULL notes never match a non-empty query.
		conds = append(conds, "notes IS NOT NULL AND instr(lower(notes), lower(?)) > 0")
		args = append(args, filter.NotesQuery)
	}

	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY date DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transactions := make([]model.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}

	return transactions, rows.Err()
}

// CountTransactions returns the total number of stored transactions.
func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// scanTransaction reads one row in the canonical column order:
// id, date, amount, type, category_id, account_id, notes.
func scanTransaction(scan func(...any) error) (*model.Transaction, error) {
	var txn model.Transaction
	var dateStr string
	var amount decimal.Decimal
	var kindStr string
	var notes sql.NullString

	if err := scan(&txn.ID, &dateStr, &amount, &kindStr, &txn.CategoryID, &txn.AccountID, &notes); err != nil {
		return nil, err
	}

	date, err := time.Parse(model.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
	}

	txn.Date = date
	txn.Amount = amount
	txn.Kind = model.Kind(kindStr)
	if notes.Valid {
		txn.Notes = notes.String
	}
	return &txn, nil
}

// notesValue maps an empty notes string to NULL so that the optional column
// stays NULL rather than holding empty strings.
func notesValue(notes string) any {
	if notes == "" {
		return nil
	}
	return notes
}
