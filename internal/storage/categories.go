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

// CreateCategory inserts a new category with the given name and kind.
func (s *Store) CreateCategory(ctx context.Context, name string, kind model.Kind) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, type) VALUES (?, ?)`, name, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	slog.Info("created category", "name", name, "kind", kind, "id", id)
	return &model.Category{ID: id, Name: name, Kind: kind}, nil
}

// GetCategories returns all categories ordered by name. When kind is
// non-empty only categories of that kind are returned; this backs the
// category-filter-by-type convenience in the UI.
func (s *Store) GetCategories(ctx context.Context, kind model.Kind) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, name, type FROM categories`
	args := []any{}
	if kind != "" {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
		}
		query += ` WHERE type = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var kindStr string
		if err := rows.Scan(&cat.ID, &cat.Name, &kindStr); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Kind = model.Kind(kindStr)
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

// GetCategoryByID returns the category with the given id, or common.ErrNotFound.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}
	return s.scanCategory(s.db.QueryRowContext(ctx,
		`SELECT id, name, type FROM categories WHERE id = ?`, id))
}

// GetCategoryByName returns the category with the given name. The match is
// exact and case-sensitive; a miss is common.ErrNotFound.
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	return s.scanCategory(s.db.QueryRowContext(ctx,
		`SELECT id, name, type FROM categories WHERE name = ?`, name))
}

func (s *Store) scanCategory(row *sql.Row) (*model.Category, error) {
	var cat model.Category
	var kindStr string
	err := row.Scan(&cat.ID, &cat.Name, &kindStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	cat.Kind = model.Kind(kindStr)
	return &cat, nil
}

// CategoryNames returns the id→name mapping for all categories in one
// query, for callers that resolve many rows at once.
func (s *Store) CategoryNames(ctx context.Context) (map[int64]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan category name: %w", err)
		}
		names[id] = name
	}

	return names, rows.Err()
}

// DeleteCategory removes a category. The database rejects the delete with a
// foreign key error if any transaction still references it; that error is
// surfaced verbatim. A missing id is common.ErrNotFound.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	slog.Info("deleted category", "id", id)
	return nil
}
