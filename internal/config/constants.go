package config

import "time"

// Base application details
const AppName = "slate"
const Version = "0.1.0"
const ThemesDirName = "themes"
const TemplatesDirName = "templates"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "slate.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults
const (
	DefaultSnapThreshold   = 5.0
	DefaultHistoryLimit    = 50
	DefaultPasteOffset     = 20.0
	DefaultMinElementSize  = 1.0
	DefaultCellWidth       = 10.0
	DefaultCellHeight      = 20.0
	DefaultHandleTolerance = 10.0
	DefaultNudgeStep       = 1.0
	DefaultNudgeStepLarge  = 10.0
)

const SystemClipboard = true
