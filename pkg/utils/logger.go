package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logFile *os.File

// InitLogger configures the global zerolog logger. Without verbose
// mode everything is discarded so log writes never bleed into the
// terminal the TUI owns. With it, debug output goes to a dated file.
func InitLogger(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if !verbose {
		log.Logger = zerolog.Nop()
		return
	}

	logFileName := fmt.Sprintf("/tmp/todoview_%s.log", time.Now().Format("2006-01-02"))
	f, err := os.Create(logFileName)
	if err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
		log.Logger = zerolog.Nop()
		return
	}

	logFile = f
	log.Logger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	log.Debug().Msg("verbose logging enabled")
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
