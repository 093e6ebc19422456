// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/slate/internal/commands"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/plugin"
	"github.com/bethropolis/slate/internal/templates"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// Built-in commands drive the same adapter.
var _ commands.HostAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document ---

func (api *appEditorAPI) Elements() []types.Element {
	return api.app.editor.Elements()
}

func (api *appEditorAPI) SelectedElements() []types.Element {
	return api.app.editor.Selection().SelectedElements()
}

func (api *appEditorAPI) SelectedIDs() []int {
	return api.app.editor.SelectedIDs()
}

// --- Mutations ---

func (api *appEditorAPI) AddElement(t types.ElementType, x, y float64) (types.Element, error) {
	el, err := api.app.editor.AddElement(t, x, y)
	if err == nil {
		api.app.requestRedraw()
	}
	return el, err
}

func (api *appEditorAPI) UpdateElement(el types.Element) bool {
	if !api.app.editor.UpdateElement(el) {
		return false
	}
	api.app.requestRedraw()
	return true
}

func (api *appEditorAPI) SelectElement(id int, mods types.Modifiers) {
	api.app.editor.SelectElement(id, mods)
	api.app.requestRedraw()
}

func (api *appEditorAPI) Undo() bool {
	ok := api.app.editor.Undo()
	api.app.requestRedraw()
	return ok
}

func (api *appEditorAPI) Redo() bool {
	ok := api.app.editor.Redo()
	api.app.requestRedraw()
	return ok
}

func (api *appEditorAPI) Clear() int {
	n := api.app.editor.Clear()
	api.app.requestRedraw()
	return n
}

func (api *appEditorAPI) SetSnapEnabled(enabled bool) {
	api.app.editor.SetSnapEnabled(enabled)
	api.app.requestRedraw()
}

func (api *appEditorAPI) SnapEnabled() bool {
	return api.app.editor.SnapEnabled()
}

// --- Templates ---

func (api *appEditorAPI) Templates() []templates.Template {
	return api.app.templates.All()
}

func (api *appEditorAPI) InsertTemplate(name string) (types.Element, error) {
	el, err := api.app.modeHandler.InsertTemplate(name)
	if err == nil {
		api.app.requestRedraw()
	}
	return el, err
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app == nil || api.app.GetModeHandler() == nil {
		logger.Errorf("appEditorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme sets the active theme by name
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: api.app.themeManager.Current().Name})
	logger.Debugf("Theme changed to '%s', redraw requested", name)
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}
