package app

import (
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/theme"
)

// handleThemeChanged applies the new theme's base style to the screen.
func (a *App) handleThemeChanged(e event.Event) bool {
	a.tuiManager.SetStyle(a.themeManager.Current().GetStyle(theme.StyleDefault))
	a.requestRedraw()
	return false
}

// handleInteractionEnded logs how each gesture ended.
func (a *App) handleInteractionEnded(e event.Event) bool {
	data, ok := e.Data.(event.InteractionData)
	if !ok {
		logger.Warnf("App: InteractionEnded with unexpected data type: %T", e.Data)
		return false
	}
	logger.DebugTagf("interaction", "%s on #%d ended, committed=%v", data.State, data.ElementID, data.Committed)
	return false
}

// handleDocumentReplaced keeps the status bar honest after undo, redo or clear.
func (a *App) handleDocumentReplaced(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentReplacedData); ok {
		logger.DebugTagf("history", "document replaced, %d element(s)", data.Count)
	}
	a.requestRedraw()
	return false
}
