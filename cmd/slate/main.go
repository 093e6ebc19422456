// cmd/slate/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // For fatal errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/slate/internal/app"
	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	// --- Configuration ---
	res, cfgErr := config.LoadConfig("", flags)
	cfg := res.Config
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = defaultLogPath()
	}

	// --- Logger Initialization ---
	// The terminal belongs to the UI, so stderr only receives logs when asked for with -logfile -.
	if err := logger.Init(cfg.Logger, os.Stderr); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config file could not be read, using defaults: %v", cfgErr)
	} else if res.Path != "" {
		logger.Debugf("Loaded config from %s", res.Path)
	}
	for _, key := range res.UnknownKeys {
		logger.Warnf("Unknown config key: %s", key)
	}

	// --- Create and Run App ---
	slateApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logger.Close()
		os.Exit(1)
	}

	if err := slateApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// defaultLogPath puts the log next to the config file.
func defaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.DefaultLogFileName
	}
	return filepath.Join(dir, config.AppName, config.DefaultLogFileName)
}
