// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words after the command name and returns an error.
type CommandFunc func(args []string) error

// EditorAPI is what plugins may do with the editing session. Reads return
// copies; every mutation is committed to history like a user action.
type EditorAPI interface {
	// --- Document (copies) ---
	Elements() []types.Element
	SelectedElements() []types.Element
	SelectedIDs() []int

	// --- Mutations ---
	AddElement(t types.ElementType, x, y float64) (types.Element, error)
	UpdateElement(el types.Element) bool
	SelectElement(id int, mods types.Modifiers)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins subscribe
	// to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
