package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"todoview/pkg/todo"
)

// refreshRows rebuilds the table rows from the store's visible list.
// Called after every mutating command so the presentation always
// reflects the derived state.
func (m *Model) refreshRows() {
	m.items = m.store.Visible()

	tableRows := []table.Row{}
	for _, item := range m.items {
		checkbox := "[ ]"
		if m.store.IsSelected(item.ID) {
			checkbox = "[x]"
		}

		status := ""
		if item.Completed {
			status = "✓"
		}

		title := item.Title
		if item.Completed {
			title = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.CompletedColor)).
				Render(title)
		}

		tableRows = append(tableRows, table.Row{checkbox, status, title, formatDate(item.CreationDate)})
	}

	m.table.SetRows(tableRows)

	// Keep the cursor on a real row after deletes and filter changes
	if cursor := m.table.Cursor(); cursor >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// cursorItem returns the visible todo under the table cursor
func (m *Model) cursorItem() *todo.Todo {
	if len(m.items) == 0 || m.table.Cursor() >= len(m.items) {
		return nil
	}
	return &m.items[m.table.Cursor()]
}

// focusNextFilterInput toggles focus between the from and to inputs
func (m *Model) focusNextFilterInput() {
	m.activeInput = (m.activeInput + 1) % 2
	if m.activeInput == 0 {
		m.fromInput.Focus()
		m.toInput.Blur()
	} else {
		m.fromInput.Blur()
		m.toInput.Focus()
	}
}

// applyFilter hands the raw bound text to the store and returns to
// the list. Unparseable bounds degrade to unset inside the store.
func (m *Model) applyFilter() {
	m.store.SetFilter(m.fromInput.Value(), m.toInput.Value())
	m.mode = NormalMode
	m.refreshRows()
}

func formatDate(date time.Time) string {
	return date.Format("01/02/2006")
}
