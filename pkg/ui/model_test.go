package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoview/pkg/config"
	"todoview/pkg/todo"
)

func fixtureTodos() []todo.Todo {
	return []todo.Todo{
		{ID: 1, Title: "Banana", Description: "Banana", CreationDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Apple", Description: "Apple", CreationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()

	load := func(ctx context.Context) ([]todo.Todo, error) {
		return fixtureTodos(), nil
	}
	m := NewModel(load, config.Config{}, config.DefaultStyles())

	msg := m.Init()()
	require.IsType(t, todosLoadedMsg{}, msg)

	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLoadPopulatesTable(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	require.Len(t, m.items, 2)
	assert.Len(t, m.table.Rows(), 2)
	// Default sort is creation date ascending.
	assert.Equal(t, "Banana", m.items[0].Title)
}

func TestLoadFailureLeavesStoreEmpty(t *testing.T) {
	load := func(ctx context.Context) ([]todo.Todo, error) {
		return nil, errors.New("connection refused")
	}
	m := NewModel(load, config.Config{}, config.DefaultStyles())

	updated, _ := m.Update(m.Init()())
	m = updated.(Model)

	assert.False(t, m.loading)
	assert.Error(t, m.err)
	assert.Equal(t, 0, m.store.Len())
}

func TestSortKeyTogglesTitleOrder(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress('t'))
	m = updated.(Model)
	assert.Equal(t, "Apple", m.items[0].Title)

	updated, _ = m.Update(keyPress('t'))
	m = updated.(Model)
	assert.Equal(t, "Banana", m.items[0].Title)
}

func TestSelectAllMarksRows(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress('a'))
	m = updated.(Model)

	assert.True(t, m.store.AllVisibleSelected())
	for _, row := range m.table.Rows() {
		assert.Equal(t, "[x]", row[0])
	}

	// Pressing again deselects everything visible.
	updated, _ = m.Update(keyPress('a'))
	m = updated.(Model)
	assert.Equal(t, 0, m.store.SelectedCount())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress('d'))
	m = updated.(Model)
	require.Equal(t, DeleteConfirmMode, m.mode)
	require.NotNil(t, m.pendingDelete)

	updated, _ = m.Update(keyPress('n'))
	m = updated.(Model)
	assert.Equal(t, NormalMode, m.mode)
	assert.Equal(t, 2, m.store.Len())

	updated, _ = m.Update(keyPress('d'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress('y'))
	m = updated.(Model)
	assert.Equal(t, 1, m.store.Len())
	assert.Len(t, m.table.Rows(), 1)
}

func TestEditFlowSavesDraft(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress('e'))
	m = updated.(Model)
	require.Equal(t, EditMode, m.mode)
	assert.Equal(t, "Banana", m.descInput.Value())

	m.descInput.SetValue("rewritten")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, NormalMode, m.mode)
	got, _ := m.store.ByID(1)
	assert.Equal(t, "rewritten", got.Description)
}

func TestEditEscapeDiscardsDraft(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyPress('e'))
	m = updated.(Model)
	m.descInput.SetValue("never saved")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.False(t, m.store.Edit().Active)
	got, _ := m.store.ByID(1)
	assert.Equal(t, "Banana", got.Description)
}

func TestFilterNarrowsTableAndResetRestores(t *testing.T) {
	m := loadedModel(t)

	m.fromInput.SetValue("2024-02-15")
	m.toInput.SetValue("2024-03-15")
	m.applyFilter()

	require.Len(t, m.items, 1)
	assert.Equal(t, "Apple", m.items[0].Title)

	updated, _ := m.Update(keyPress('r'))
	m = updated.(Model)
	assert.Len(t, m.items, 2)
	assert.Empty(t, m.fromInput.Value())
}

func TestCursorItemNilOnEmptyTable(t *testing.T) {
	load := func(ctx context.Context) ([]todo.Todo, error) {
		return nil, nil
	}
	m := NewModel(load, config.Config{}, config.DefaultStyles())

	updated, _ := m.Update(todosLoadedMsg(nil))
	m = updated.(Model)

	assert.Nil(t, m.cursorItem())

	// Commands on an empty view are safe no-ops.
	updated, _ = m.Update(keyPress('e'))
	m = updated.(Model)
	assert.Equal(t, NormalMode, m.mode)
}
