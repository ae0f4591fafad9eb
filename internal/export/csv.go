// Package export serializes transaction listings to flat delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mircothibes/personal-finance-tracker/internal/model"
)

// Header is the fixed CSV header row.
var Header = []string{"id", "date", "type", "amount", "account", "category", "notes"}

// WriteCSV writes one row per transaction, in the order given, with amounts
// at exactly two decimal places and dates in YYYY-MM-DD. Account and
// category names come from the supplied bulk maps; ids missing from a map
// fall back to a synthetic label rather than erroring.
func WriteCSV(w io.Writer, rows []model.Transaction, accountNames, categoryNames map[int64]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range rows {
		record := []string{
			strconv.FormatInt(txn.ID, 10),
			txn.Date.Format(model.DateFormat),
			string(txn.Kind),
			txn.Amount.StringFixed(2),
			lookupName(accountNames, txn.AccountID, "Account"),
			lookupName(categoryNames, txn.CategoryID, "Category"),
			txn.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for transaction %d: %w", txn.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func lookupName(names map[int64]string, id int64, label string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("%s %d", label, id)
}
