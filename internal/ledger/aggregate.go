package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// MonthlyNet is the net amount (income minus expense) for one YYYY-MM period.
type MonthlyNet struct {
	Month string
	Net   decimal.Decimal
}

// Summary holds the aggregates derived from a transaction listing.
type Summary struct {
	ByCategory   map[string]decimal.Decimal
	ByMonth      []MonthlyNet
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// Summarize computes totals, per-category expense sums, and the monthly net
// series for the given rows. It is pure and in-memory: the result does not
// depend on the input ordering, except that ByMonth always comes back in
// chronologically ascending order for chart rendering.
//
// ByCategory covers expense rows only, keyed by the resolved category name;
// ids missing from categoryNames fall back to a synthetic "Category {id}"
// label instead of erroring.
func Summarize(rows []model.Transaction, categoryNames map[int64]string) Summary {
	summary := Summary{
		ByCategory:   make(map[string]decimal.Decimal),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, txn := range rows {
		month := txn.Date.Format("2006-01")
		switch txn.Kind {
		case model.KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			byMonth[month] = byMonth[month].Add(txn.Amount)
		case model.KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
			byMonth[month] = byMonth[month].Sub(txn.Amount)

			name, ok := categoryNames[txn.CategoryID]
			if !ok {
				name = fmt.Sprintf("Category %d", txn.CategoryID)
			}
			summary.ByCategory[name] = summary.ByCategory[name].Add(txn.Amount)
		}
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	summary.ByMonth = make([]MonthlyNet, 0, len(months))
	for _, month := range months {
		summary.ByMonth = append(summary.ByMonth, MonthlyNet{Month: month, Net: byMonth[month]})
	}

	return summary
}
