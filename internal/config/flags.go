// internal/config/flags.go
package config

import (
	"flag"
	"fmt"

	"github.com/bethropolis/slate/internal/logger"
)

// Flags holds values parsed from command-line flags. Only flags that were
// actually set on the command line override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	SystemClipboard *bool
	Snap            *bool
}

// NewFlags defines the flags on fs. Pass flag.CommandLine from main.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Mirror copied elements to the system clipboard")
	f.Snap = fs.Bool("snap", true, "Snap moving elements to alignment guides")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every explicitly set flag into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "applying flag override: %s=%s", fl.Name, fl.Value.String())
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "snap":
			cfg.Canvas.Snap = *f.Snap
		case "log-tags":
			cfg.Logger.EnabledTags = logger.SplitList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = logger.SplitList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = logger.SplitList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = logger.SplitList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = logger.SplitList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = logger.SplitList(*f.DisableFiles)
		}
	})
}
