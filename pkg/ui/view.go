package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"todoview/pkg/todo"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	titleBar := func(text string, background string) string {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(background)).
			Padding(0, 1).
			Render(text)
	}

	switch m.mode {
	case NormalMode:
		sb.WriteString(titleBar(" TodoView - Todo List ", m.styles.AccentColor))
		sb.WriteString("\n\n")

		if m.loading {
			sb.WriteString("Loading todos...")
			sb.WriteString("\n")
		} else {
			sb.WriteString(m.table.View())
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.NormalTextColor)).
				Render(m.statusLine()))
			sb.WriteString("\n")
		}

	case FilterMode:
		sb.WriteString(titleBar(" Filter by Creation Date ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString("From (inclusive):\n")
		sb.WriteString(m.fromInput.View())
		sb.WriteString("\n\n")
		sb.WriteString("To (inclusive):\n")
		sb.WriteString(m.toInput.View())
		sb.WriteString("\n")

	case EditMode:
		sb.WriteString(titleBar(" Edit Description ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		if target, ok := m.store.ByID(m.store.Edit().TargetID); ok {
			sb.WriteString(fmt.Sprintf("Task: %s\n\n", target.Title))
		}
		sb.WriteString("Description:\n")
		sb.WriteString(m.descInput.View())
		sb.WriteString("\n")

	case DeleteConfirmMode:
		sb.WriteString(titleBar(" Delete Task ", m.styles.ErrorColor))
		sb.WriteString("\n\n")

		if m.pendingDelete != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.pendingDelete.Title))
			sb.WriteString(fmt.Sprintf("Created: %s\n", formatDate(m.pendingDelete.CreationDate)))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
			sb.WriteString("\n")
		}

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}

		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.SortByTitle)
		addCommand(m.keyMap.SortByDate)
		addCommand(m.keyMap.FilterTasks)
		addCommand(m.keyMap.ResetFilter)
		addCommand(m.keyMap.ToggleSelect)
		addCommand(m.keyMap.SelectAll)
		addCommand(m.keyMap.EditTask)
		addCommand(m.keyMap.DeleteTask)
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\nError: %v", m.err)))
		sb.WriteString("\n")
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// statusLine summarizes filter, sort, and selection state below the
// table.
func (m Model) statusLine() string {
	var parts []string

	filter := m.store.Filter()
	switch {
	case filter.IsZero():
		parts = append(parts, fmt.Sprintf("showing all %d tasks", m.store.Len()))
	default:
		from, to := "...", "..."
		if filter.From != nil {
			from = formatDate(*filter.From)
		}
		if filter.To != nil {
			to = formatDate(*filter.To)
		}
		parts = append(parts, fmt.Sprintf("showing %d of %d tasks (created %s - %s)",
			len(m.items), m.store.Len(), from, to))
	}

	sortState := m.store.Sort()
	sortKey := "creation date"
	if sortState.Key == todo.SortByTitle {
		sortKey = "title"
	}
	order := "asc"
	if sortState.Order == todo.SortDesc {
		order = "desc"
	}
	parts = append(parts, fmt.Sprintf("sorted by %s (%s)", sortKey, order))

	selection := fmt.Sprintf("%d selected", m.store.SelectedCount())
	if m.store.AllVisibleSelected() {
		selection += " (all visible)"
	}
	parts = append(parts, selection)

	return strings.Join(parts, " | ")
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction(m.keyMap.ToggleSelect.Help().Key, "select")
		addAction(m.keyMap.SelectAll.Help().Key, "select all")
		addAction(m.keyMap.SortByTitle.Help().Key+"/"+m.keyMap.SortByDate.Help().Key, "sort")
		addAction(m.keyMap.FilterTasks.Help().Key, "filter")
		addAction(m.keyMap.ResetFilter.Help().Key, "reset")
		addAction(m.keyMap.EditTask.Help().Key, "edit")
		addAction(m.keyMap.DeleteTask.Help().Key, "del")
		addAction(m.keyMap.ShowHelp.Help().Key, "help")
		addAction(m.keyMap.QuitApp.Help().Key, "quit")

	case FilterMode:
		addAction("tab", "next field")
		addAction("enter", "apply")
		addAction("esc", "cancel")

	case EditMode:
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
	}

	return strings.Join(actions, separator)
}
