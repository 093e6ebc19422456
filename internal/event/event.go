// internal/event/event.go
package event

import (
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeElementsAdded    // New elements were inserted (create, paste, duplicate)
	TypeElementsRemoved  // Elements were deleted
	TypeElementUpdated   // A single element was replaced with a new version
	TypeDocumentReplaced // The whole document was swapped (undo, redo, clear)

	// Session events
	TypeSelectionChanged
	TypeInteractionStarted
	TypeInteractionEnded
	TypeHistoryChanged

	// Raw key press forwarded to plugins
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeElementsAdded:      "ElementsAdded",
	TypeElementsRemoved:    "ElementsRemoved",
	TypeElementUpdated:     "ElementUpdated",
	TypeDocumentReplaced:   "DocumentReplaced",
	TypeSelectionChanged:   "SelectionChanged",
	TypeInteractionStarted: "InteractionStarted",
	TypeInteractionEnded:   "InteractionEnded",
	TypeHistoryChanged:     "HistoryChanged",
	TypeKeyPressed:         "KeyPressed",
	TypeAppReady:           "AppReady",
	TypeAppQuit:            "AppQuit",
	TypeThemeChanged:       "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ElementsAddedData lists the elements that were inserted, as copies.
type ElementsAddedData struct {
	Elements []types.Element
}

// ElementsRemovedData lists the ids that no longer exist.
type ElementsRemovedData struct {
	IDs []int
}

// ElementUpdatedData carries the element before and after the change.
type ElementUpdatedData struct {
	Before types.Element
	After  types.Element
}

// DocumentReplacedData carries the element count after the swap.
type DocumentReplacedData struct {
	Count int
}

// SelectionChangedData carries the new selection, ids ascending.
type SelectionChangedData struct {
	IDs []int
}

// InteractionData describes a gesture on a primary element.
// Committed is only meaningful for TypeInteractionEnded.
type InteractionData struct {
	State     string
	ElementID int
	Committed bool
}

// HistoryChangedData reports the undo stack position.
type HistoryChangedData struct {
	Index   int
	Len     int
	CanUndo bool
	CanRedo bool
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the theme that became active.
type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}
