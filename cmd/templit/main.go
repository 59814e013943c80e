// cmd/templit/main.go
package main

import (
	"context"
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/templit/internal/app"
	"github.com/bethropolis/templit/internal/config"
	"github.com/bethropolis/templit/internal/logger"
)

const version = "0.2.0"

func main() {
	// --- Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", config.AppName)
		os.Exit(2)
	}
	filePath := args[0]

	// --- Configuration ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	logger.Init(cfg.Logger, logOutput)
	logger.Debugf("Converting file: %s", filePath)

	// --- Create and Run App ---
	output := app.Output{
		Write:    *flags.Write,
		OutPath:  *flags.OutPath,
		CopyOnly: *flags.CopyOnly,
	}

	converter, err := app.NewApp(cfg, filePath, output)
	if err != nil {
		logger.Errorf("Error initializing: %v", err)
		os.Exit(1)
	}

	if err := converter.Run(context.Background()); err != nil {
		logger.Errorf("Conversion failed: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}

// openLogOutput resolves the log destination: stderr for "" or "-",
// an append-mode file otherwise.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stderr, func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("opening '%s': %w", path, err)
	}
	return logFile, func() { logFile.Close() }, nil
}
