package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mircothibes/personal-finance-tracker/internal/cli"
	"github.com/mircothibes/personal-finance-tracker/internal/ledger"
)

func dashboardCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate income/expense summary",
		Long: `Summarize the transactions matching the given filters: total income,
total expense, net, expenses by category, and net by month.

Without --from/--to the window defaults to the last 12 months.`,
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

			// Default window: first day of this month a year ago, through today.
			if filter.DateFrom == nil && filter.DateTo == nil {
				now := time.Now()
				from := time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, time.UTC)
				to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
				filter.DateFrom = &from
				filter.DateTo = &to
			}

			rows, err := svc.List(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			summary, err := svc.Aggregate(ctx, rows)
			if err != nil {
				return err
			}

			renderDashboard(summary)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func renderDashboard(summary ledger.Summary) {
	fmt.Println(cli.TitleStyle.Render("Dashboard"))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCard("Total Income", summary.TotalIncome.StringFixed(2)),
		summaryCard("Total Expense", summary.TotalExpense.StringFixed(2)),
		summaryCard("Net", summary.Net.StringFixed(2)),
	)
	fmt.Println(cards)

	if len(summary.ByCategory) > 0 {
		fmt.Println(cli.TitleStyle.Render("Expenses by category"))

		// Largest first for readability; the map itself is unordered.
		names := make([]string, 0, len(summary.ByCategory))
		for name := range summary.ByCategory {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			a, b := summary.ByCategory[names[i]], summary.ByCategory[names[j]]
			if !a.Equal(b) {
				return a.GreaterThan(b)
			}
			return names[i] < names[j]
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\n", cli.HeaderStyle.Render("Category"), cli.HeaderStyle.Render("Amount"))
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, summary.ByCategory[name].StringFixed(2))
		}
		_ = w.Flush()
	}

	if len(summary.ByMonth) > 0 {
		fmt.Println(cli.TitleStyle.Render("Net by month"))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\n", cli.HeaderStyle.Render("Month"), cli.HeaderStyle.Render("Net"))
		for _, m := range summary.ByMonth {
			fmt.Fprintf(w, "%s\t%s\n", m.Month, m.Net.StringFixed(2))
		}
		_ = w.Flush()
	}

	if len(summary.ByCategory) == 0 && len(summary.ByMonth) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No data to display."))
	}
}

func summaryCard(title, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		cli.SubtleStyle.Render(title),
		lipgloss.NewStyle().Bold(true).Render(value),
	)
	return cli.CardStyle.Render(content) + strings.Repeat(" ", 2)
}
