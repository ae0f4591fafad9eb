package model

// MaxNameLength bounds account and category display names.
const MaxNameLength = 100

// Account represents a source or destination of funds (e.g. "Cash", "Bank Account").
// Names are unique; an account referenced by any transaction cannot be deleted.
type Account struct {
	Name string
	ID   int64
}
