package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mircothibes/personal-finance-tracker/internal/common"
	"github.com/mircothibes/personal-finance-tracker/internal/config"
	"github.com/mircothibes/personal-finance-tracker/internal/ledger"
	"github.com/mircothibes/personal-finance-tracker/internal/model"
	"github.com/mircothibes/personal-finance-tracker/internal/storage"
)

// databasePath resolves the configured database location. The process must
// not proceed with an undefined persistence target, so an explicitly blank
// setting is fatal; an unset one falls back to the documented default.
func databasePath() (string, error) {
	if viper.IsSet("database.path") && viper.GetString("database.path") == "" {
		return "", fmt.Errorf("%w: database.path is set but empty", common.ErrInvalidConfig)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "finance", "finance.db")
	}

	return config.ExpandPath(dbPath), nil
}

// initStorage opens the configured database and brings its schema current.
func initStorage(ctx context.Context) (*storage.Store, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initService opens storage and wraps it in the ledger service.
func initService(ctx context.Context) (*ledger.Service, *storage.Store, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewService(store), store, nil
}

// parseID parses a positive surrogate id from a command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// filterFlags holds the shared --type/--account/--category/--from/--to/--notes
// flag values used by the list, dashboard, and export commands.
type filterFlags struct {
	kind     string
	account  string
	category string
	from     string
	to       string
	notes    string
}

// register attaches the shared filter flags to a command.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "type", "", "filter by type (income, expense)")
	cmd.Flags().StringVar(&f.account, "account", "", "filter by account name or id")
	cmd.Flags().StringVar(&f.category, "category", "", "filter by category name or id")
	cmd.Flags().StringVar(&f.from, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "match notes containing this text (case-insensitive)")
}

// build turns raw flag values into a transaction filter, resolving account
// and category references through the service.
func (f filterFlags) build(ctx context.Context, svc *ledger.Service) (model.TransactionFilter, error) {
	var filter model.TransactionFilter

	if f.kind != "" {
		kind, err := model.ParseKind(f.kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = kind
	}

	if f.account != "" {
		id, err := strconv.ParseInt(f.account, 10, 64)
		if err != nil {
			id, err = svc.ResolveAccount(ctx, f.account)
			if err != nil {
				return filter, fmt.Errorf("account %q: %w", f.account, err)
			}
		}
		filter.AccountID = id
	}

	if f.category != "" {
		id, err := strconv.ParseInt(f.category, 10, 64)
		if err != nil {
			id, err = svc.ResolveCategory(ctx, f.category)
			if err != nil {
				return filter, fmt.Errorf("category %q: %w", f.category, err)
			}
		}
		filter.CategoryID = id
	}

	if f.from != "" {
		from, err := time.Parse(model.DateFormat, f.from)
		if err != nil {
			return filter, fmt.Errorf("invalid --from date %q: expected %s", f.from, model.DateFormat)
		}
		filter.DateFrom = &from
	}

	if f.to != "" {
		to, err := time.Parse(model.DateFormat, f.to)
		if err != nil {
			return filter, fmt.Errorf("invalid --to date %q: expected %s", f.to, model.DateFormat)
		}
		filter.DateTo = &to
	}

	filter.NotesQuery = f.notes
	return filter, nil
}
