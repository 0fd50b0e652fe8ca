package todo

import (
	"time"
)

// Todo represents a single todo record. Title and Completed come from
// the remote source; Description and CreationDate are synthesized once
// at load time and never recomputed.
type Todo struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Completed    bool      `json:"completed"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
}

// SortKey selects the field the visible list is ordered by
type SortKey int

const (
	SortByCreationDate SortKey = iota // Default sort key
	SortByTitle
)

// SortOrder represents the sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// SortState holds the single active sort key/direction pair
type SortState struct {
	Key   SortKey
	Order SortOrder
}

// Filter holds an inclusive creation date range. A nil bound is unset
// and places no constraint on that side.
type Filter struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether both bounds are unset
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil
}

// Matches reports whether the given creation instant falls inside the
// range. Comparison is on the full timestamp, inclusive on both ends;
// a To bound does not extend to end-of-day.
func (f Filter) Matches(d time.Time) bool {
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	return true
}
