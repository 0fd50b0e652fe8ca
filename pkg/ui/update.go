package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"todoview/pkg/todo"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		m.store.LoadAll(msg)
		m.refreshRows()

	case loadFailedMsg:
		// The store stays empty; the failure is surfaced, not retried.
		m.loading = false
		m.err = msg.err
		log.Error().Err(msg.err).Msg("ui: loading todos failed")

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.SortByTitle):
				m.store.ToggleSort(todo.SortByTitle)
				m.refreshRows()

			case key.Matches(msg, m.keyMap.SortByDate):
				m.store.ToggleSort(todo.SortByCreationDate)
				m.refreshRows()

			case key.Matches(msg, m.keyMap.FilterTasks):
				m.mode = FilterMode
				m.activeInput = 0
				m.fromInput.Focus()
				m.toInput.Blur()

			case key.Matches(msg, m.keyMap.ResetFilter):
				m.store.ResetFilter()
				m.fromInput.SetValue("")
				m.toInput.SetValue("")
				m.refreshRows()

			case key.Matches(msg, m.keyMap.ToggleSelect):
				if item := m.cursorItem(); item != nil {
					m.store.ToggleSelect(item.ID, !m.store.IsSelected(item.ID))
					m.refreshRows()
				}

			case key.Matches(msg, m.keyMap.SelectAll):
				m.store.ToggleSelectAll(!m.store.AllVisibleSelected())
				m.refreshRows()

			case key.Matches(msg, m.keyMap.EditTask):
				if item := m.cursorItem(); item != nil {
					m.store.OpenEdit(item.ID)
					m.descInput.SetValue(m.store.Edit().Draft)
					m.descInput.CursorEnd()
					m.descInput.Focus()
					m.mode = EditMode
				}

			case key.Matches(msg, m.keyMap.DeleteTask):
				if item := m.cursorItem(); item != nil {
					pending := *item
					m.pendingDelete = &pending
					m.mode = DeleteConfirmMode
				}
			}

		case FilterMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode

			case "tab", "shift+tab", "up", "down":
				m.focusNextFilterInput()

			case "enter":
				if m.activeInput == 1 {
					m.applyFilter()
				} else {
					m.focusNextFilterInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.fromInput, cmd = m.fromInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.toInput, cmd = m.toInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case EditMode:
			switch msg.String() {
			case "esc":
				m.store.CancelEdit()
				m.mode = NormalMode

			case "enter":
				m.store.UpdateDraft(m.descInput.Value())
				m.store.SaveEdit()
				m.refreshRows()
				m.mode = NormalMode

			default:
				m.descInput, cmd = m.descInput.Update(msg)
				cmds = append(cmds, cmd)
				m.store.UpdateDraft(m.descInput.Value())
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.pendingDelete != nil {
					log.Debug().Int("id", m.pendingDelete.ID).Msg("ui: deleting todo")
					m.store.DeleteByID(m.pendingDelete.ID)
					m.refreshRows()
				}
				m.mode = NormalMode
				m.pendingDelete = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.pendingDelete = nil
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 6)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
