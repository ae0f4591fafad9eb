package model

// Category labels a transaction (e.g. "Food", "Salary"). Each category is
// either an income or an expense category; names are unique.
type Category struct {
	Name string
	Kind Kind
	ID   int64
}
