package app

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	cfg.Canvas.TemplatesDir = t.TempDir()

	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewAppWithScreen(cfg, screen)
	if err != nil {
		t.Fatalf("NewAppWithScreen: %v", err)
	}
	return a, screen
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCanvasSizeExcludesStatusBar(t *testing.T) {
	a, screen := newTestApp(t)
	w, h := screen.Size()
	cw, ch := a.canvasSize()
	if cw != w || ch != h-1 {
		t.Fatalf("canvas %dx%d for screen %dx%d", cw, ch, w, h)
	}
}

func TestAddAndDraw(t *testing.T) {
	a, screen := newTestApp(t)
	if !a.handleEvent(key('r')) {
		t.Fatalf("adding an element should request a redraw")
	}
	a.draw()

	_, h := screen.Size()
	status := rowText(screen, h-1)
	if !strings.Contains(status, "NORMAL") || !strings.Contains(status, "rectangle #1") {
		t.Fatalf("unexpected status line %q", status)
	}
}

func TestBuiltinCommandsRegistered(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(key('r'))

	for _, r := range ":undo" {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.editor.Store().Len() != 0 {
		t.Fatalf(":undo should remove the added element")
	}

	for _, r := range ":stats" {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if msg := a.statusBar.Message(); strings.HasPrefix(msg, "Unknown command") {
		t.Fatalf("stats plugin command missing: %q", msg)
	}
}

func TestEditorAPI(t *testing.T) {
	a, _ := newTestApp(t)
	api := a.editorAPI

	el, err := api.AddElement(types.Circle, 10, 20)
	if err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	el.Width = 40
	if !api.UpdateElement(el) {
		t.Fatalf("UpdateElement should apply a change")
	}
	if api.UpdateElement(el) {
		t.Fatalf("UpdateElement with no change should report false")
	}
	if got := api.SelectedElements(); len(got) != 1 || got[0].Width != 40 {
		t.Fatalf("unexpected selection %+v", got)
	}

	if err := api.SetTheme("slate light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if api.GetTheme().Name != "Slate Light" {
		t.Fatalf("theme not switched, got %q", api.GetTheme().Name)
	}
	if err := api.SetTheme("missing"); err == nil {
		t.Fatalf("unknown theme should fail")
	}

	if _, err := api.InsertTemplate("profile-card"); err != nil {
		t.Fatalf("InsertTemplate: %v", err)
	}
	if n := api.Clear(); n != 2 {
		t.Fatalf("Clear removed %d, want 2", n)
	}
	if !api.Undo() || len(api.Elements()) != 2 {
		t.Fatalf("Clear should be undoable")
	}
}

func TestRunQuitsOnForceQuit(t *testing.T) {
	a, screen := newTestApp(t)
	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after Ctrl+Q")
	}
}
