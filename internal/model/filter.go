package model

import "time"

// TransactionFilter narrows a transaction listing. Every field is optional;
// supplied fields combine with AND. Zero values (empty Kind, zero IDs, nil
// dates, empty NotesQuery) impose no constraint.
type TransactionFilter struct {
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Kind       Kind
	NotesQuery string // case-insensitive substring match against notes
	CategoryID int64
	AccountID  int64
}

// IsZero reports whether the filter imposes no constraint at all.
func (f TransactionFilter) IsZero() bool {
	return f.Kind == "" && f.CategoryID == 0 && f.AccountID == 0 &&
		f.DateFrom == nil && f.DateTo == nil && f.NotesQuery == ""
}
