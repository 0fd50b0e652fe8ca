package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEditSeedsDraftFromDescription(t *testing.T) {
	s := seededStore()

	ok := s.OpenEdit(1)

	require.True(t, ok)
	assert.Equal(t, EditSession{TargetID: 1, Draft: "Banana", Active: true}, s.Edit())
}

func TestOpenEditMissingLeavesSessionClosed(t *testing.T) {
	s := seededStore()

	ok := s.OpenEdit(42)

	assert.False(t, ok)
	assert.False(t, s.Edit().Active)
}

func TestUpdateDraftWithoutSessionIsNoop(t *testing.T) {
	s := seededStore()

	s.UpdateDraft("orphan text")

	assert.Equal(t, EditSession{}, s.Edit())
}

func TestSaveEditCommitsAndClears(t *testing.T) {
	s := seededStore()
	s.OpenEdit(1)
	s.UpdateDraft("rewritten")

	s.SaveEdit()

	got, _ := s.ByID(1)
	assert.Equal(t, "rewritten", got.Description)
	assert.Equal(t, "rewritten", got.Title)
	assert.False(t, s.Edit().Active)
}

func TestSaveEditWithoutSessionIsNoop(t *testing.T) {
	s := seededStore()

	s.SaveEdit()

	got, _ := s.ByID(1)
	assert.Equal(t, "Banana", got.Description)
}

func TestCancelEditDiscardsDraft(t *testing.T) {
	s := seededStore()
	s.OpenEdit(1)
	s.UpdateDraft("never saved")

	s.CancelEdit()

	assert.False(t, s.Edit().Active)
	got, _ := s.ByID(1)
	assert.Equal(t, "Banana", got.Description)
}

func TestReopenDiscardsPreviousDraft(t *testing.T) {
	s := seededStore()
	s.OpenEdit(1)
	s.UpdateDraft("draft for banana")

	// Last open wins; the unsaved first draft is gone.
	s.OpenEdit(2)
	assert.Equal(t, EditSession{TargetID: 2, Draft: "Apple", Active: true}, s.Edit())

	s.SaveEdit()
	banana, _ := s.ByID(1)
	assert.Equal(t, "Banana", banana.Description)
}

func TestDeleteTargetClosesEditSession(t *testing.T) {
	s := seededStore()
	s.OpenEdit(1)
	s.UpdateDraft("new text")

	s.DeleteByID(1)
	assert.False(t, s.Edit().Active)

	// The discarded draft must not land anywhere on a later save.
	s.SaveEdit()
	remaining, _ := s.ByID(2)
	assert.Equal(t, "Apple", remaining.Description)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteOtherTodoKeepsEditSession(t *testing.T) {
	s := seededStore()
	s.OpenEdit(1)

	s.DeleteByID(2)

	assert.True(t, s.Edit().Active)
	assert.Equal(t, 1, s.Edit().TargetID)
}
