package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoview/pkg/config"
	"todoview/pkg/keymaps"
	"todoview/pkg/todo"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	FilterMode        // Mode for entering the date range filter
	EditMode          // Mode for editing a description
	DeleteConfirmMode // Mode for confirming a delete
	HelpViewMode      // Mode for displaying help
)

// LoadFunc supplies the todo set. Loading is the one asynchronous
// boundary: it runs once as a tea command, and its completion message
// performs the single LoadAll. There is no retry and no cancellation.
type LoadFunc func(ctx context.Context) ([]todo.Todo, error)

type todosLoadedMsg []todo.Todo

type loadFailedMsg struct {
	err error
}

// Model represents the application state
type Model struct {
	table         table.Model
	store         *todo.Store
	items         []todo.Todo // visible snapshot the table rows were built from
	load          LoadFunc
	loading       bool
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Form state
	mode        InputMode
	fromInput   textinput.Model
	toInput     textinput.Model
	descInput   textinput.Model
	activeInput int

	// Delete state
	pendingDelete *todo.Todo
}

// NewModel creates a new UI model with the provided configuration
func NewModel(load LoadFunc, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "", Width: 3},
		{Title: "Task", Width: 46},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	// Initialize text inputs
	fromInput := textinput.New()
	fromInput.Placeholder = "From (YYYY-MM-DD, optional)"
	fromInput.Width = 40
	fromInput.Focus()

	toInput := textinput.New()
	toInput.Placeholder = "To (YYYY-MM-DD, optional)"
	toInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description"
	descInput.Width = 40

	return Model{
		table:     t,
		store:     todo.NewStore(),
		load:      load,
		loading:   true,
		config:    cfg,
		styles:    styles,
		keyMap:    keymaps.BuildKeyMap(cfg.KeyMap),
		mode:      NormalMode,
		fromInput: fromInput,
		toInput:   toInput,
		descInput: descInput,
	}
}

// Init kicks off the one-shot fetch (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return m.fetchTodos
}

func (m Model) fetchTodos() tea.Msg {
	todos, err := m.load(context.Background())
	if err != nil {
		return loadFailedMsg{err: err}
	}
	return todosLoadedMsg(todos)
}
