package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mircothibes/personal-finance-tracker/internal/storage"
)

func migrateCmd() *cobra.Command {
	var (
		status bool
		down   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Every migration has an exact inverse: --down reverses the most recently
applied step, and --status reports the current schema version without
changing anything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			dbPath, err := databasePath()
			if err != nil {
				return err
			}

			store, err := storage.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = store.Close() }()

			if status {
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Database: %s\n", dbPath)
				fmt.Printf("Current schema version: %d\n", version)
				fmt.Printf("Latest schema version: %d\n", storage.ExpectedSchemaVersion)
				return nil
			}

			if down {
				if err := store.MigrateDown(ctx); err != nil {
					return fmt.Errorf("rollback failed: %w", err)
				}
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				slog.Info("Rolled back one migration", "database", dbPath, "version", version)
				return nil
			}

			slog.Info("Running database migrations", "database", dbPath)
			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			slog.Info("Database migrations completed")

			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "Show current migration status without applying changes")
	cmd.Flags().BoolVar(&down, "down", false, "Reverse the most recently applied migration")
	cmd.MarkFlagsMutuallyExclusive("status", "down")

	return cmd
}
