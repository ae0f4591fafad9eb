package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration. Every forward change
// carries an exact inverse so the schema can be stepped back one version at
// a time.
type Migration struct {
	Up          func(*sql.Tx) error
	Down        func(*sql.Tx) error
	Description string
	Version     int
}

func execAll(tx *sql.Tx, queries []string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}
	return nil
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Create categories table",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT UNIQUE NOT NULL CHECK (length(name) <= 100),
					type TEXT NOT NULL CHECK (type IN ('income','expense'))
				)`,
			})
		},
		Down: func(tx *sql.Tx) error {
			return execAll(tx, []string{`DROP TABLE categories`})
		},
	},
	{
		Version:     2,
		Description: "Create accounts table",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS accounts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT UNIQUE NOT NULL CHECK (length(name) <= 100)
				)`,
			})
		},
		Down: func(tx *sql.Tx) error {
			return execAll(tx, []string{`DROP TABLE accounts`})
		},
	},
	{
		Version:     3,
		Description: "Create transactions table",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date TEXT NOT NULL,
					amount NUMERIC NOT NULL CHECK (amount >= 0),
					type TEXT NOT NULL CHECK (type IN ('income','expense')),
					category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
					account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE RESTRICT,
					notes TEXT CHECK (notes IS NULL OR length(notes) <= 255)
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category_id)`,
				`CREATE INDEX idx_transactions_account ON transactions(account_id)`,
			})
		},
		Down: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`DROP INDEX idx_transactions_account`,
				`DROP INDEX idx_transactions_category`,
				`DROP INDEX idx_transactions_date`,
				`DROP TABLE transactions`,
			})
		},
	},
}

// SchemaVersion returns the database's current schema version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		if err := s.applyStep(ctx, migration.Up, migration.Version); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// MigrateDown reverses the most recently applied migration, stepping the
// schema back exactly one version. At version zero it is a no-op.
func (s *Store) MigrateDown(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if currentVersion == 0 {
		return nil
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		migration := migrations[i]
		if migration.Version != currentVersion {
			continue
		}

		if err := s.applyStep(ctx, migration.Down, migration.Version-1); err != nil {
			return fmt.Errorf("rollback of migration %d failed: %w", migration.Version, err)
		}

		slog.Info("Reversed migration",
			"version", migration.Version,
			"description", migration.Description)
		return nil
	}

	return fmt.Errorf("no migration found for schema version %d", currentVersion)
}

// applyStep runs a single migration function and records the resulting
// version, all inside one transaction.
func (s *Store) applyStep(ctx context.Context, step func(*sql.Tx) error, resultVersion int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := step(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", resultVersion)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	return nil
}
