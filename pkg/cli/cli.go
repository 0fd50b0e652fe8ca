package cli

import (
	"flag"

	"todoview/pkg/api"
	"todoview/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Source overrides
	URL       string
	Limit     int
	InputFile string

	// Export operations
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Source overrides
	flag.StringVar(&args.URL, "url", "", "Todos endpoint URL")
	flag.IntVar(&args.Limit, "limit", 0, "Number of todos to request")
	flag.StringVar(&args.InputFile, "input", "", "Load todos from a local JSON file instead of the endpoint")

	// Export operations
	flag.StringVar(&args.ExportFile, "export", "", "Export todos to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(client *api.Client, args *Args) bool {
	if args.ExportFile != "" {
		commands.HandleExportCommand(client, args.InputFile, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
