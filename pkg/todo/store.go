package todo

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Store holds the authoritative in-memory todo collection along with
// the view state that determines what is visible: sort, date filter,
// row selection, and the single edit session. All mutation goes
// through its methods; there is exactly one mutator (the UI loop), so
// no locking is needed.
type Store struct {
	todos     []Todo
	sortState SortState
	filter    Filter
	selected  map[int]struct{}
	edit      EditSession
}

// NewStore creates an empty store with the default sort
// (creation date, ascending) and no filter.
func NewStore() *Store {
	return &Store{
		selected: make(map[int]struct{}),
	}
}

// LoadAll atomically replaces the entire collection. Used once, after
// the remote fetch resolves.
func (s *Store) LoadAll(records []Todo) {
	s.todos = make([]Todo, len(records))
	copy(s.todos, records)
	log.Debug().Int("count", len(records)).Msg("store: loaded todos")
}

// Len returns the size of the full (unfiltered) collection
func (s *Store) Len() int {
	return len(s.todos)
}

// ByID looks up a todo in the full collection
func (s *Store) ByID(id int) (Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

// Visible derives the filtered, sorted list currently eligible for
// display.
func (s *Store) Visible() []Todo {
	return Derive(s.todos, s.filter, s.sortState)
}

// Sort returns the active sort state
func (s *Store) Sort() SortState {
	return s.sortState
}

// Filter returns the active date range filter
func (s *Store) Filter() Filter {
	return s.filter
}

// ToggleSort activates the given sort key. Selecting the already
// active key flips its direction; selecting a new key resets the
// direction to ascending.
func (s *Store) ToggleSort(key SortKey) {
	if s.sortState.Key == key {
		if s.sortState.Order == SortAsc {
			s.sortState.Order = SortDesc
		} else {
			s.sortState.Order = SortAsc
		}
		return
	}
	s.sortState = SortState{Key: key, Order: SortAsc}
}

// SetFilter replaces the date range filter from user-entered text.
// Empty or unparseable bounds degrade to "unset" rather than raising,
// so filtering loses a constraint instead of failing.
func (s *Store) SetFilter(fromText, toText string) {
	s.filter = Filter{
		From: ParseBound(fromText),
		To:   ParseBound(toText),
	}
}

// ResetFilter clears both bounds
func (s *Store) ResetFilter() {
	s.filter = Filter{}
}

// DeleteByID removes the matching record, drops it from the selection
// set, and closes the edit session if it targeted the deleted record.
// A missing id is a silent no-op.
func (s *Store) DeleteByID(id int) {
	kept := make([]Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.todos = kept
	delete(s.selected, id)
	if s.edit.Active && s.edit.TargetID == id {
		s.edit = EditSession{}
	}
}

// UpdateDescription replaces the description of the matching record
// with text. The title is replaced as well, matching the reference
// edit panel. A missing id is a silent no-op.
func (s *Store) UpdateDescription(id int, text string) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Description = text
			s.todos[i].Title = text
			return
		}
	}
}

// ParseBound parses user-entered filter bound text into an instant.
// Empty or unparseable text yields nil (an unset bound). Accepts the
// date-input format (YYYY-MM-DD) and RFC 3339 timestamps.
func ParseBound(text string) *time.Time {
	if text == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	log.Debug().Str("text", text).Msg("store: unparseable filter bound, treating as unset")
	return nil
}
