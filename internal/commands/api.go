package commands

import (
	"github.com/bethropolis/slate/internal/plugin"
	"github.com/bethropolis/slate/internal/templates"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/types"
)

// Registrar is where commands get registered; the mode handler in practice.
type Registrar interface {
	RegisterCommand(name string, cmdFunc plugin.CommandFunc) error
}

// HostAPI is what the built-in commands drive.
type HostAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})

	Templates() []templates.Template
	InsertTemplate(name string) (types.Element, error)

	Undo() bool
	Redo() bool
	Clear() int
	SetSnapEnabled(enabled bool)
	SnapEnabled() bool
}
