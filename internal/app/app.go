// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/slate/internal/commands"
	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/core"
	"github.com/bethropolis/slate/internal/core/clipboard"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/modehandler"
	"github.com/bethropolis/slate/internal/plugin"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/bethropolis/slate/internal/templates"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// messageCheckInterval is how often an expired status message is cleared from screen.
const messageCheckInterval = 500 * time.Millisecond

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	templates     *templates.Registry
	viewport      *tui.Viewport
	editorAPI     *appEditorAPI

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	events        chan tcell.Event

	shownMessage string // status message on screen at the last draw
}

// NewApp creates the terminal and every component from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	tuiManager, err := tui.New(tcell.StyleDefault)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen is NewApp over an existing screen, such as a simulation screen.
func NewAppWithScreen(cfg *config.Config, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen, tcell.StyleDefault)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager)
}

func newApp(cfg *config.Config, tuiManager *tui.TUI) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	// --- Create Core Components ---
	eventManager := event.NewManager()
	editor := core.NewEditor(cfg.Canvas, eventManager)
	if cfg.Editor.SystemClipboard {
		if sys := clipboard.NewSystemClipboard(); sys != nil {
			editor.SetSystemClipboard(sys)
		} else {
			logger.Warnf("App: system clipboard unavailable, copies stay in-process")
		}
	}

	themeManager := theme.NewManager(cfg.ThemesDir(), cfg.Editor.Theme)
	tuiManager.SetStyle(themeManager.Current().GetStyle(theme.StyleDefault))

	registry := templates.NewRegistry()
	if n, err := registry.LoadDir(cfg.TemplatesDir()); err != nil {
		logger.Warnf("App: loading templates from '%s': %v", cfg.TemplatesDir(), err)
	} else if n > 0 {
		logger.Infof("App: loaded %d user template(s)", n)
	}

	viewport := tui.NewViewport(input.CellScale{Width: cfg.Canvas.CellWidth, Height: cfg.Canvas.CellHeight})
	statusBar := statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout})
	quitChan := make(chan struct{})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		templates:     registry,
		viewport:      viewport,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		events:        make(chan tcell.Event, 16),
	}

	// --- Create Mode Handler ---
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Viewport:       viewport,
		Templates:      registry,
		ViewSize:       a.canvasSize,
		QuitSignal:     quitChan,
	})

	// --- Create Editor API adapter ---
	a.editorAPI = newEditorAPI(a)

	// --- Subscribe App level handlers ---
	eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	eventManager.Subscribe(event.TypeInteractionEnded, a.handleInteractionEnded)
	eventManager.Subscribe(event.TypeDocumentReplaced, a.handleDocumentReplaced)

	// --- Built-in commands and plugins ---
	commands.RegisterAppCommands(a.modeHandler, a.editorAPI)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		return nil, fmt.Errorf("plugin initialization failed: %w", err)
	}

	return a, nil
}

// Run starts the application's main loop. Terminal events are read on their
// own goroutine and handed over a channel; everything else, the editor
// included, runs on the calling goroutine.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s %s - r/c/t/p add | : command | q quit", config.AppName, config.Version)
	a.requestRedraw()

	ticker := time.NewTicker(messageCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting with %d element(s) on the canvas", a.editor.Store().Len())
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.draw()
		case <-ticker.C:
			if a.shownMessage != "" && a.statusBar.Message() == "" {
				a.requestRedraw()
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent routes one terminal event. Returns true if a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(ev)
	case *tcell.EventFocus:
		return a.modeHandler.HandleFocusEvent(ev)
	}
	return false
}

// canvasSize is the drawable canvas in cells: the screen minus the status bar.
func (a *App) canvasSize() (int, int) {
	w, h := a.tuiManager.Size()
	h -= a.cfg.Editor.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return w, h
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetThemeManager returns the theme manager.
func (a *App) GetThemeManager() *theme.Manager {
	return a.themeManager
}

// Editor returns the editing session.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// API returns the interface plugins and built-in commands use.
func (a *App) API() plugin.EditorAPI {
	return a.editorAPI
}
