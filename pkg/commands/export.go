package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todoview/pkg/api"
	"todoview/pkg/todo"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(client *api.Client, inputFile, filename, exportType string) {
	var todos []todo.Todo
	var err error

	if inputFile != "" {
		todos, err = LoadFile(client, inputFile)
	} else {
		todos, err = client.Fetch(context.Background())
	}
	if err != nil {
		fmt.Printf("Error loading todos: %v\n", err)
		os.Exit(1)
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	todos = todo.Derive(todos, todo.Filter{}, todo.SortState{})

	var content []byte

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(todos, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling todos to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		var lastDate string
		for _, t := range todos {
			dateStr := t.CreationDate.Format("2006-01-02")
			if dateStr != lastDate {
				lines = append(lines, fmt.Sprintf("\n%s:", dateStr))
				lastDate = dateStr
			}

			status := " "
			if t.Completed {
				status = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", status, t.Description))
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d todo(s) to %s\n", len(todos), filename)
}
