package todo

// ToggleSelect adds or removes a single id from the selection set.
// Selections are keyed by id, not by visibility: an id selected under
// one filter stays selected when the filter changes.
func (s *Store) ToggleSelect(id int, selected bool) {
	if selected {
		s.selected[id] = struct{}{}
	} else {
		delete(s.selected, id)
	}
}

// ToggleSelectAll selects or deselects every currently visible todo.
// Selections for ids outside the visible list are untouched either
// way.
func (s *Store) ToggleSelectAll(selected bool) {
	for _, t := range s.Visible() {
		s.ToggleSelect(t.ID, selected)
	}
}

// IsSelected reports whether the id is in the selection set
func (s *Store) IsSelected(id int) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedCount returns the size of the selection set, including ids
// not currently visible.
func (s *Store) SelectedCount() int {
	return len(s.selected)
}

// AllVisibleSelected reports whether the visible list is non-empty
// and every visible todo is selected. An empty visible list yields
// false, never vacuously true, so a "select all" control cannot show
// checked over an empty view.
func (s *Store) AllVisibleSelected() bool {
	visible := s.Visible()
	if len(visible) == 0 {
		return false
	}
	for _, t := range visible {
		if !s.IsSelected(t.ID) {
			return false
		}
	}
	return true
}
