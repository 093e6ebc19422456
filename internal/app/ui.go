package app

import (
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/modehandler"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/bethropolis/slate/internal/tui"
	"github.com/bethropolis/slate/internal/types"
)

// draw clears the screen and redraws the canvas and status bar.
func (a *App) draw() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	canvasW, canvasH := a.canvasSize()

	logger.DebugTagf("draw", "draw: screen %dx%d, canvas %dx%d, viewport (%.0f,%.0f)",
		width, height, canvasW, canvasH, a.viewport.X, a.viewport.Y)

	a.tuiManager.Clear()
	tui.DrawCanvas(screen, canvasW, canvasH, a.viewport, a.scene(), currentTheme)
	a.statusBar.Draw(screen, width, height, currentTheme)
	a.tuiManager.Show()
	a.shownMessage = a.statusBar.Message()
}

// scene collects what the canvas shows this frame.
func (a *App) scene() tui.Scene {
	sc := tui.Scene{
		Elements:        a.editor.RenderElements(),
		Selected:        types.NewIDSet(a.editor.SelectedIDs()...),
		Guides:          a.editor.Guides(),
		HandleTolerance: a.cfg.Canvas.HandleTolerance,
		ShowHandles:     !a.editor.Interaction().Active(),
		Summary: func(markup string) []string {
			return a.templates.SummaryFor(markup).Lines()
		},
	}
	if box, ok := a.editor.SelectionBox(); ok {
		sc.SelectionBox = &box
	}
	return sc
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	h := a.editor.History()
	a.statusBar.SetInfo(statusbar.Info{
		Mode:         a.modeHandler.GetCurrentModeString(),
		Elements:     a.editor.Store().Len(),
		Selected:     a.editor.Selection().SelectedElements(),
		Interaction:  a.editor.InteractionState().String(),
		Snap:         a.editor.SnapEnabled(),
		HistoryIndex: h.Index(),
		HistoryLen:   h.Len(),
		Pointer:      a.modeHandler.Pointer(),
	})

	// Keep the command line on screen however long it takes to type.
	if a.modeHandler.GetCurrentMode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
