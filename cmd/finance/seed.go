package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mircothibes/personal-finance-tracker/internal/cli"
	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
	"github.com/mircothibes/personal-finance-tracker/internal/storage"
)

// Default reference data, inserted idempotently.
var (
	defaultAccounts = []string{
		"Cash",
		"Bank Account",
		"Credit Card",
		"Savings",
		"Wallet",
	}

	defaultCategories = []struct {
		Name string
		Kind model.Kind
	}{
		{"Salary", model.KindIncome},
		{"Bonus", model.KindIncome},
		{"Investments", model.KindIncome},
		{"Food", model.KindExpense},
		{"Rent", model.KindExpense},
		{"Transport", model.KindExpense},
		{"Entertainment", model.KindExpense},
	}
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed default accounts and categories",
		Long:  `Insert the default set of accounts and categories. Existing entries are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			created, err := seed(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Seeded %d new entries", created)))
			return nil
		},
	}
}

func seed(ctx context.Context, store *storage.Store) (int, error) {
	created := 0

	for _, name := range defaultAccounts {
		_, err := store.GetAccountByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return created, fmt.Errorf("failed to check account %q: %w", name, err)
		}
		if _, err := store.CreateAccount(ctx, name); err != nil {
			return created, fmt.Errorf("failed to seed account %q: %w", name, err)
		}
		created++
	}

	for _, c := range defaultCategories {
		_, err := store.GetCategoryByName(ctx, c.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return created, fmt.Errorf("failed to check category %q: %w", c.Name, err)
		}
		if _, err := store.CreateCategory(ctx, c.Name, c.Kind); err != nil {
			return created, fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		created++
	}

	slog.Info("seeded reference data", "created", created)
	return created, nil
}
