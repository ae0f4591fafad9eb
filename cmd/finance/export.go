package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mircothibes/personal-finance-tracker/internal/cli"
	"github.com/mircothibes/personal-finance-tracker/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		flags  filterFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Write the transactions matching the given filters to a CSV file with the
header id,date,type,amount,account,category,notes. With no --output the CSV
goes to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter, err := flags.build(ctx, svc)
			if err != nil {
				return err
			}

			rows, err := svc.List(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			accountNames, categoryNames, err := svc.Names(ctx)
			if err != nil {
				return err
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := export.WriteCSV(w, rows, accountNames, categoryNames); err != nil {
				return fmt.Errorf("failed to export transactions: %w", err)
			}

			if output != "" {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d transactions to %s", len(rows), output)))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")

	return cmd
}
