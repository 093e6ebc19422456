// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionForceQuit // Quit without asking

	// --- Element creation (placed at the viewport centre) ---
	ActionAddRectangle
	ActionAddCircle
	ActionAddText
	ActionAddTemplate // Default template from the registry

	// --- Selection / document ---
	ActionDelete
	ActionSelectAll
	ActionEscape // Cancel gesture, or clear selection
	ActionToggleSnap

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste
	ActionDuplicate

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Nudge selection ---
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight

	// --- Viewport ---
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionPanReset

	// --- Command line ---
	ActionEnterCommandMode
	ActionInsertRune // Rune carried in ActionEvent
	ActionDeleteCharBackward
	ActionSubmit // Enter
)

var actionNames = map[Action]string{
	ActionQuit:               "quit",
	ActionForceQuit:          "force-quit",
	ActionAddRectangle:       "add-rectangle",
	ActionAddCircle:          "add-circle",
	ActionAddText:            "add-text",
	ActionAddTemplate:        "add-template",
	ActionDelete:             "delete",
	ActionSelectAll:          "select-all",
	ActionEscape:             "escape",
	ActionToggleSnap:         "toggle-snap",
	ActionCopy:               "copy",
	ActionCut:                "cut",
	ActionPaste:              "paste",
	ActionDuplicate:          "duplicate",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionNudgeUp:            "nudge-up",
	ActionNudgeDown:          "nudge-down",
	ActionNudgeLeft:          "nudge-left",
	ActionNudgeRight:         "nudge-right",
	ActionPanUp:              "pan-up",
	ActionPanDown:            "pan-down",
	ActionPanLeft:            "pan-left",
	ActionPanRight:           "pan-right",
	ActionPanReset:           "pan-reset",
	ActionEnterCommandMode:   "command-mode",
	ActionInsertRune:         "insert-rune",
	ActionDeleteCharBackward: "backspace",
	ActionSubmit:             "submit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
// Rune is set for every plain rune key, even when it is bound to another
// action, so the command line can still type it.
type ActionEvent struct {
	Action Action
	Rune   rune
	Large  bool // Shift held: nudge/pan by the large step
}
