// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slate/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Canvas CanvasConfig  `toml:"canvas"`
}

// EditorConfig holds host settings.
type EditorConfig struct {
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	Theme           string `toml:"theme"`
}

// CanvasConfig tunes the editing engine.
type CanvasConfig struct {
	Snap            bool    `toml:"snap"`
	SnapThreshold   float64 `toml:"snap_threshold"`
	HistoryLimit    int     `toml:"history_limit"`
	PasteOffset     float64 `toml:"paste_offset"`
	MinElementSize  float64 `toml:"min_element_size"`
	HandleTolerance float64 `toml:"handle_tolerance"`
	NudgeStep       float64 `toml:"nudge_step"`
	NudgeStepLarge  float64 `toml:"nudge_step_large"`

	// Canvas units per terminal cell.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	// Directory of user template files. Empty means <config dir>/slate/templates.
	TemplatesDir string `toml:"templates_dir"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Canvas: DefaultCanvasConfig(),
	}
}

// DefaultCanvasConfig returns the engine defaults.
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		Snap:            true,
		SnapThreshold:   DefaultSnapThreshold,
		HistoryLimit:    DefaultHistoryLimit,
		PasteOffset:     DefaultPasteOffset,
		MinElementSize:  DefaultMinElementSize,
		HandleTolerance: DefaultHandleTolerance,
		NudgeStep:       DefaultNudgeStep,
		NudgeStepLarge:  DefaultNudgeStepLarge,
		CellWidth:       DefaultCellWidth,
		CellHeight:      DefaultCellHeight,
	}
}

// DefaultConfigPath returns <user config dir>/slate/config.toml, or "" if unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes path over cfg. A missing file is not an error.
// Undecoded keys are returned so the caller can warn once the logger is up.
func loadFromFile(path string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	d := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = d.Logger.LogLevel
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = d.Editor.StatusBarHeight
	}

	cv, dc := &c.Canvas, d.Canvas
	if cv.SnapThreshold <= 0 {
		cv.SnapThreshold = dc.SnapThreshold
	}
	if cv.HistoryLimit < 2 {
		cv.HistoryLimit = dc.HistoryLimit
	}
	if cv.PasteOffset == 0 {
		cv.PasteOffset = dc.PasteOffset
	}
	if cv.MinElementSize <= 0 {
		cv.MinElementSize = dc.MinElementSize
	}
	if cv.HandleTolerance <= 0 {
		cv.HandleTolerance = dc.HandleTolerance
	}
	if cv.NudgeStep <= 0 {
		cv.NudgeStep = dc.NudgeStep
	}
	if cv.NudgeStepLarge <= 0 {
		cv.NudgeStepLarge = dc.NudgeStepLarge
	}
	if cv.CellWidth <= 0 {
		cv.CellWidth = dc.CellWidth
	}
	if cv.CellHeight <= 0 {
		cv.CellHeight = dc.CellHeight
	}
}

// Result is what LoadConfig produced, with anything worth logging after logger.Init.
type Result struct {
	Config      *Config
	Path        string   // file that was read, "" if none
	UnknownKeys []string // keys in the file that matched no field
}

// LoadConfig merges defaults, the TOML file and flag overrides, then validates.
// It does not log: the logger is configured from its result.
func LoadConfig(path string, flags *Flags) (Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Config: cfg}

	if path == "" && flags != nil && flags.ConfigFilePath != nil {
		path = *flags.ConfigFilePath
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	var loadErr error
	if path != "" {
		unknown, err := loadFromFile(path, cfg)
		if err != nil {
			loadErr = err
		} else {
			res.Path = path
			res.UnknownKeys = unknown
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return res, loadErr
}

// TemplatesDir resolves the user template directory.
func (c *Config) TemplatesDir() string {
	if c.Canvas.TemplatesDir != "" {
		return c.Canvas.TemplatesDir
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, TemplatesDirName)
}

// ThemesDir is where user theme files are loaded from.
func (c *Config) ThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ThemesDirName)
}
