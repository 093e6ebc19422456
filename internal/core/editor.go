// internal/core/editor.go
package core

import (
	"sort"

	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/core/clipboard"
	"github.com/bethropolis/slate/internal/core/elements"
	"github.com/bethropolis/slate/internal/core/guides"
	"github.com/bethropolis/slate/internal/core/history"
	"github.com/bethropolis/slate/internal/core/interaction"
	"github.com/bethropolis/slate/internal/core/selection"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
	"github.com/google/uuid"
)

// Editor is one editing session. It builds every manager once and owns the
// contract between them: gestures are committed to history after they end,
// removals prune the selection, and undo/redo swap the whole document.
// It is not safe for concurrent use; the host drives it from a single goroutine.
type Editor struct {
	id  string
	cfg config.CanvasConfig

	store       *elements.Manager
	selection   *selection.Manager
	guides      *guides.Manager
	interaction *interaction.Controller
	history     *history.Manager
	clipboard   *clipboard.Manager

	eventManager *event.Manager

	// Rubber-band selection in progress.
	boxing   bool
	boxStart types.Point
	boxEnd   types.Point
}

// NewEditor creates a session with an empty document.
// em may be nil, in which case the session gets a private bus.
func NewEditor(cfg config.CanvasConfig, em *event.Manager) *Editor {
	if em == nil {
		em = event.NewManager()
	}
	id := uuid.NewString()

	store := elements.NewManager()
	store.SetEventManager(em)

	sel := selection.NewManager(store)
	sel.SetEventManager(em)
	// Registered before anyone else so later subscribers see a pruned selection.
	em.Subscribe(event.TypeElementsRemoved, sel.HandleElementsRemoved)
	em.Subscribe(event.TypeDocumentReplaced, sel.HandleDocumentReplaced)

	snap := guides.NewManager(cfg.SnapThreshold)
	snap.SetEnabled(cfg.Snap)

	e := &Editor{
		id:           id,
		cfg:          cfg,
		store:        store,
		selection:    sel,
		guides:       snap,
		interaction:  interaction.NewController(store, sel, snap, cfg.MinElementSize),
		history:      history.NewManager(store.Snapshot(), cfg.HistoryLimit),
		clipboard:    clipboard.NewManager(cfg.PasteOffset, nil, id),
		eventManager: em,
	}
	logger.Infof("Editor: session %s created (snap=%v threshold=%.1f history=%d)", id, cfg.Snap, cfg.SnapThreshold, cfg.HistoryLimit)
	return e
}

// SessionID identifies this editor in clipboard payloads.
func (e *Editor) SessionID() string { return e.id }

// SetSystemClipboard mirrors copies to the OS clipboard. nil disables it.
func (e *Editor) SetSystemClipboard(sys clipboard.SystemClipboard) {
	e.clipboard.SetSystemClipboard(sys)
}

func (e *Editor) GetEventManager() *event.Manager { return e.eventManager }
func (e *Editor) Store() *elements.Manager { return e.store }
func (e *Editor) Selection() *selection.Manager { return e.selection }
func (e *Editor) History() *history.Manager { return e.history }
func (e *Editor) Interaction() *interaction.Controller { return e.interaction }
func (e *Editor) Clipboard() *clipboard.Manager { return e.clipboard }
func (e *Editor) CanvasConfig() config.CanvasConfig { return e.cfg }
func (e *Editor) Guides() guides.Guides { return e.guides.Guides() }
func (e *Editor) InteractionState() interaction.State { return e.interaction.State() }
func (e *Editor) SelectedIDs() []int { return e.selection.IDs() }
func (e *Editor) SelectedElement() (types.Element, bool) { return e.selection.SelectedElement() }
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
func (e *Editor) ElementAt(p types.Point) (types.Element, bool) {
	return e.store.ElementAtPosition(p.X, p.Y)
}

// SetSnapEnabled toggles guide snapping for later moves.
func (e *Editor) SetSnapEnabled(enabled bool) {
	e.cfg.Snap = enabled
	e.guides.SetEnabled(enabled)
}

// SnapEnabled reports whether moves snap to guides.
func (e *Editor) SnapEnabled() bool { return e.guides.Enabled() }

// Elements returns the committed document in paint order.
func (e *Editor) Elements() []types.Element {
	return e.store.Elements()
}

// RenderElements returns the document in paint order with any in-progress
// gesture preview substituted for the committed elements.
func (e *Editor) RenderElements() []types.Element {
	els := e.store.Elements()
	if !e.interaction.Active() {
		return els
	}
	preview := make(map[int]types.Element)
	for _, w := range e.interaction.Working() {
		preview[w.ID] = w
	}
	for i, el := range els {
		if w, ok := preview[el.ID]; ok {
			els[i] = w
		}
	}
	sort.SliceStable(els, func(i, j int) bool { return els[i].ZIndex < els[j].ZIndex })
	return els
}

// SelectionBox returns the rubber-band rectangle while one is being dragged.
func (e *Editor) SelectionBox() (types.Rect, bool) {
	if !e.boxing {
		return types.Rect{}, false
	}
	return types.RectFromPoints(e.boxStart, e.boxEnd), true
}

// commit records the current document as a new history entry.
func (e *Editor) commit(reason string) {
	e.history.AddToHistory(e.store.Snapshot())
	logger.DebugTagf("history", "commit after %s", reason)
	e.dispatchHistory()
}

func (e *Editor) dispatchHistory() {
	e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Index:   e.history.Index(),
		Len:     e.history.Len(),
		CanUndo: e.history.CanUndo(),
		CanRedo: e.history.CanRedo(),
	})
}
