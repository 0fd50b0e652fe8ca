package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"todoview/pkg/api"
	"todoview/pkg/todo"
)

// LoadFile reads todos from a local JSON file in the remote wire format
// and augments them the same way a fetch would.
func LoadFile(client *api.Client, filename string) ([]todo.Todo, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading todos file: %w", err)
	}

	var records []api.RemoteTodo
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("decoding todos file: %w", err)
	}

	return client.Augment(records), nil
}
