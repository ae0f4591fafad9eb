// Package model defines the plain data records shared across the application.
package model

import "fmt"

// Kind indicates the direction of cash flow for a transaction or category.
// Amounts are always non-negative; the kind carries the sign.
type Kind string

const (
	// KindIncome marks money coming in.
	KindIncome Kind = "income"
	// KindExpense marks money going out.
	KindExpense Kind = "expense"
)

// ParseKind converts a raw string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid kind %q: must be %q or %q", s, KindIncome, KindExpense)
	}
}

// Valid reports whether the kind is one of the two allowed values.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}
