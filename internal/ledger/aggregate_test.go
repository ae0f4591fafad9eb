package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txnOn(date string, kind model.Kind, amount string, categoryID int64) model.Transaction {
	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{Date: d, Kind: kind, Amount: dec(amount), CategoryID: categoryID}
}

func scenarioRows() []model.Transaction {
	return []model.Transaction{
		txnOn("2024-01-10", model.KindExpense, "50.00", 2),
		txnOn("2024-01-15", model.KindIncome, "1000.00", 1),
		txnOn("2024-02-01", model.KindExpense, "20.00", 2),
	}
}

func scenarioNames() map[int64]string {
	return map[int64]string{1: "Salary", 2: "Food"}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(scenarioRows(), scenarioNames())

	assert.True(t, summary.TotalIncome.Equal(dec("1000.00")), "income %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpense.Equal(dec("70.00")), "expense %s", summary.TotalExpense)
	assert.True(t, summary.Net.Equal(dec("930.00")), "net %s", summary.Net)

	require.Len(t, summary.ByCategory, 1)
	assert.True(t, summary.ByCategory["Food"].Equal(dec("70.00")))

	require.Len(t, summary.ByMonth, 2)
	assert.Equal(t, "2024-01", summary.ByMonth[0].Month)
	assert.True(t, summary.ByMonth[0].Net.Equal(dec("950.00")))
	assert.Equal(t, "2024-02", summary.ByMonth[1].Month)
	assert.True(t, summary.ByMonth[1].Net.Equal(dec("-20.00")))
}

func TestSummarize_OrderIndependent(t *testing.T) {
	rows := scenarioRows()
	reversed := make([]model.Transaction, len(rows))
	for i, txn := range rows {
		reversed[len(rows)-1-i] = txn
	}

	a := Summarize(rows, scenarioNames())
	b := Summarize(reversed, scenarioNames())

	assert.True(t, a.Net.Equal(b.Net))
	assert.Equal(t, a.ByMonth, b.ByMonth)
	assert.Len(t, b.ByCategory, len(a.ByCategory))
	for name, sum := range a.ByCategory {
		assert.True(t, b.ByCategory[name].Equal(sum), "category %s", name)
	}
}

func TestSummarize_CategorySumsMatchTotalExpense(t *testing.T) {
	rows := []model.Transaction{
		txnOn("2024-03-01", model.KindExpense, "10.50", 2),
		txnOn("2024-03-02", model.KindExpense, "4.25", 3),
		txnOn("2024-03-03", model.KindExpense, "0.25", 2),
		txnOn("2024-03-04", model.KindIncome, "100.00", 1),
	}

	summary := Summarize(rows, map[int64]string{1: "Salary", 2: "Food", 3: "Transport"})

	sum := decimal.Zero
	for _, v := range summary.ByCategory {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(summary.TotalExpense), "sum %s vs total %s", sum, summary.TotalExpense)
}

func TestSummarize_UnknownCategoryFallback(t *testing.T) {
	rows := []model.Transaction{
		txnOn("2024-05-01", model.KindExpense, "7.00", 99),
	}

	summary := Summarize(rows, map[int64]string{})

	require.Len(t, summary.ByCategory, 1)
	assert.True(t, summary.ByCategory["Category 99"].Equal(dec("7.00")))
}

func TestSummarize_MonthsAscending(t *testing.T) {
	rows := []model.Transaction{
		txnOn("2024-12-01", model.KindIncome, "1.00", 1),
		txnOn("2023-01-01", model.KindIncome, "1.00", 1),
		txnOn("2024-06-01", model.KindIncome, "1.00", 1),
	}

	summary := Summarize(rows, scenarioNames())

	require.Len(t, summary.ByMonth, 3)
	for i := 1; i < len(summary.ByMonth); i++ {
		assert.Less(t, summary.ByMonth[i-1].Month, summary.ByMonth[i].Month)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.True(t, summary.Net.IsZero())
	assert.Empty(t, summary.ByCategory)
	assert.Empty(t, summary.ByMonth)
}
