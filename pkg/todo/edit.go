package todo

// EditSession captures which single todo (if any) is being
// description-edited, plus the uncommitted draft text.
type EditSession struct {
	TargetID int
	Draft    string
	Active   bool
}

// Edit returns the current edit session state
func (s *Store) Edit() EditSession {
	return s.edit
}

// OpenEdit starts an edit session for the given todo, seeding the
// draft from its description. Opening over an existing session
// discards the previous unsaved draft (last open wins). Returns false
// on a lookup miss, in which case no session is opened.
func (s *Store) OpenEdit(id int) bool {
	t, ok := s.ByID(id)
	if !ok {
		return false
	}
	s.edit = EditSession{TargetID: t.ID, Draft: t.Description, Active: true}
	return true
}

// UpdateDraft replaces the draft text. Nothing is persisted until
// SaveEdit. No-op without an open session.
func (s *Store) UpdateDraft(text string) {
	if !s.edit.Active {
		return
	}
	s.edit.Draft = text
}

// SaveEdit commits the draft into the target record and clears the
// session. No-op without an open session, so a save racing a prior
// delete does nothing.
func (s *Store) SaveEdit() {
	if !s.edit.Active {
		return
	}
	s.UpdateDescription(s.edit.TargetID, s.edit.Draft)
	s.edit = EditSession{}
}

// CancelEdit clears the session without committing
func (s *Store) CancelEdit() {
	s.edit = EditSession{}
}
