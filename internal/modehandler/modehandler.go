// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sync"

	"github.com/bethropolis/slate/internal/core"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/plugin"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/bethropolis/slate/internal/templates"
	"github.com/bethropolis/slate/internal/tui"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeCommand:
		return "COMMAND"
	}
	return "UNKNOWN"
}

// ModeHandler routes keyboard and mouse input to the editing session
// according to the current mode, and owns the command registry.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	viewport       *tui.Viewport
	templates      *templates.Registry
	viewSize       func() (int, int)
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	currentMode      InputMode
	cmdBuffer        []rune
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool

	// Mouse state
	buttonDown bool
	pointer    types.Point
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Viewport       *tui.Viewport
	Templates      *templates.Registry
	ViewSize       func() (width, height int) // canvas area in cells, status bar excluded
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil ||
		cfg.Viewport == nil || cfg.Templates == nil || cfg.ViewSize == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		viewport:       cfg.Viewport,
		templates:      cfg.Templates,
		viewSize:       cfg.ViewSize,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "key %s -> %s (mode %s)", ev.Name(), actionEvent.Action, mh.currentMode)

	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the mode label for the status bar.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.currentMode.String()
}

// GetCommandBuffer returns the command being typed, "" outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

// Pointer is the last canvas position reported by the mouse.
func (mh *ModeHandler) Pointer() types.Point {
	return mh.pointer
}

func (mh *ModeHandler) quit() {
	mh.quitOnce.Do(func() { close(mh.quitSignal) })
}
