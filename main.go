package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todoview/pkg/api"
	"todoview/pkg/cli"
	"todoview/pkg/commands"
	"todoview/pkg/config"
	"todoview/pkg/todo"
	"todoview/pkg/ui"
	"todoview/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, styles, err := config.Load(args.ConfigPath, api.DefaultURL, api.DefaultLimit)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Command line overrides take precedence over the config file
	if args.URL != "" {
		cfg.APIURL = args.URL
	}
	if args.Limit > 0 {
		cfg.Limit = args.Limit
	}

	client := api.NewClient(cfg.APIURL, cfg.Limit)

	// Handle one-shot CLI commands
	if cli.HandleCommands(client, args) {
		return
	}

	load := client.Fetch
	if args.InputFile != "" {
		load = func(ctx context.Context) ([]todo.Todo, error) {
			return commands.LoadFile(client, args.InputFile)
		}
	}

	p := tea.NewProgram(ui.NewModel(load, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
