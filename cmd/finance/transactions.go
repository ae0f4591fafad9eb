package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mircothibes/personal-finance-tracker/internal/cli"
	"github.com/mircothibes/personal-finance-tracker/internal/ledger"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Record and list transactions",
		Long:    `Add, update, delete, and list income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

// transactionFormFlags attaches the create/update form flags to a command.
func transactionFormFlags(cmd *cobra.Command, form *ledger.TransactionForm) {
	cmd.Flags().StringVar(&form.Date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "non-negative amount, e.g. 12.50")
	cmd.Flags().StringVar(&form.Kind, "type", "", "transaction type (income, expense)")
	cmd.Flags().StringVar(&form.Account, "account", "", "account name or id")
	cmd.Flags().StringVar(&form.Category, "category", "", "category name or id")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "optional free-text note")
}

func listTransactionsCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List transactions newest first. All filters are optional and combine with AND.`,
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

			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			accountNames, categoryNames, err := svc.Names(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Notes"))

			for _, txn := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format("2006-01-02"),
					txn.Kind,
					txn.Amount.StringFixed(2),
					accountNames[txn.AccountID],
					categoryNames[txn.CategoryID],
					txn.Notes)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var form ledger.TransactionForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, store, err := initService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := svc.Create(ctx, form)
			if err != nil {
				if ledger.IsValidationError(err) {
					return err
				}
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded %s of %s on %s (ID: %d)",
				txn.Kind, txn.Amount.StringFixed(2), txn.Date.Format("2006-01-02"), txn.ID)))
			return nil
		},
	}

	transactionFormFlags(cmd, &form)
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var form ledger.TransactionForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing transaction",
		Long:  `Rewrite a transaction selected by its id. All fields must be supplied; the id never changes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, store, err := initService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := svc.Update(ctx, id, form)
			if err != nil {
				if ledger.IsValidationError(err) {
					return err
				}
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated transaction %d", txn.ID)))
			return nil
		},
	}

	transactionFormFlags(cmd, &form)
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, store, err := initService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !force {
				fmt.Printf("Are you sure you want to delete transaction %d? (y/N): ", id)
				var response string
				_, _ = fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			found, err := svc.Delete(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}
			if !found {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Transaction %d not found.", id)))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
