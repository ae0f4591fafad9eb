package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

func sampleRows(t *testing.T) []model.Transaction {
	t.Helper()
	parse := func(s string) time.Time {
		d, err := time.Parse(model.DateFormat, s)
		require.NoError(t, err)
		return d
	}
	return []model.Transaction{
		{
			ID: 2, Date: parse("2024-01-15"), Kind: model.KindIncome,
			Amount: decimal.RequireFromString("1000"), AccountID: 1, CategoryID: 1,
		},
		{
			ID: 1, Date: parse("2024-01-10"), Kind: model.KindExpense,
			Amount: decimal.RequireFromString("50.5"), AccountID: 2, CategoryID: 2,
			Notes: "groceries, with a comma",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	accounts := map[int64]string{1: "Bank Account", 2: "Cash"}
	categories := map[int64]string{1: "Salary", 2: "Food"}

	require.NoError(t, WriteCSV(&buf, sampleRows(t), accounts, categories))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"2", "2024-01-15", "income", "1000.00", "Bank Account", "Salary", ""}, records[1])
	assert.Equal(t, []string{"1", "2024-01-10", "expense", "50.50", "Cash", "Food", "groceries, with a comma"}, records[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil, nil))

	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}

func TestWriteCSV_NameFallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows(t)[:1], nil, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Account 1", records[1][4])
	assert.Equal(t, "Category 1", records[1][5])
}
