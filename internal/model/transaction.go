package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxNotesLength bounds the free-text notes on a transaction.
const MaxNotesLength = 255

// DateFormat is the canonical calendar-date layout used everywhere:
// storage, input parsing, and export.
const DateFormat = "2006-01-02"

// Transaction is a single ledger entry. Amount is a non-negative fixed-point
// value at scale 2; the direction of cash flow comes from Kind.
type Transaction struct {
	Date       time.Time
	Amount     decimal.Decimal
	Kind       Kind
	Notes      string
	ID         int64
	CategoryID int64
	AccountID  int64
}
