package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":     {"ctrl+b", "show/hide commands"},
	"QuitApp":      {"q", "quit"},
	"SortByTitle":  {"t", "sort by title (again to flip)"},
	"SortByDate":   {"s", "sort by creation date (again to flip)"},
	"FilterTasks":  {"f", "filter by date range"},
	"ResetFilter":  {"r", "reset filter"},
	"ToggleSelect": {"space", "select/deselect row"},
	"SelectAll":    {"a", "select/deselect all visible"},
	"EditTask":     {"e", "edit description"},
	"DeleteTask":   {"d", "delete task"},
}

type KeyMap struct {
	ShowHelp     key.Binding
	QuitApp      key.Binding
	SortByTitle  key.Binding
	SortByDate   key.Binding
	FilterTasks  key.Binding
	ResetFilter  key.Binding
	ToggleSelect key.Binding
	SelectAll    key.Binding
	EditTask     key.Binding
	DeleteTask   key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByTitle":
			km.SortByTitle = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByDate":
			km.SortByDate = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "FilterTasks":
			km.FilterTasks = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ResetFilter":
			km.ResetFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSelect":
			km.ToggleSelect = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SelectAll":
			km.SelectAll = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditTask":
			km.EditTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteTask":
			km.DeleteTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	// Bubble Tea reports the spacebar as a literal space
	bound := make([]string, 0, len(keys))
	for _, k := range keys {
		bound = append(bound, k)
		if k == "space" {
			bound = append(bound, " ")
		}
	}

	return key.NewBinding(
		key.WithKeys(bound...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
