package core

import (
	"fmt"

	"github.com/bethropolis/slate/internal/core/clipboard"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// AddElement places a new element of type t at (x, y), selects it and commits.
func (e *Editor) AddElement(t types.ElementType, x, y float64) (types.Element, error) {
	return e.add(t, x, y, nil)
}

// AddTemplate places a template element of the template's intrinsic size at (x, y).
func (e *Editor) AddTemplate(tpl types.TemplateData, x, y float64) (types.Element, error) {
	return e.add(types.Template, x, y, &tpl)
}

func (e *Editor) add(t types.ElementType, x, y float64, tpl *types.TemplateData) (types.Element, error) {
	e.CancelInteraction()
	el, err := e.store.AddElement(t, x, y, tpl)
	if err != nil {
		return types.Element{}, fmt.Errorf("add %s: %w", t, err)
	}
	e.selection.SelectElement(el.ID, types.Modifiers{})
	e.commit("add " + string(t))
	return el, nil
}

// DeleteSelection removes the selected elements and returns how many were removed.
func (e *Editor) DeleteSelection() int {
	e.CancelInteraction()
	ids := e.selection.Set()
	if len(ids) == 0 {
		return 0
	}
	before := e.store.Len()
	e.store.RemoveElements(ids)
	removed := before - e.store.Len()
	if removed > 0 {
		e.commit("delete")
	}
	return removed
}

// Clear removes every element. It is undoable.
func (e *Editor) Clear() int {
	e.CancelInteraction()
	n := e.store.Len()
	if n == 0 {
		return 0
	}
	e.store.RemoveElements(types.NewIDSet(e.store.IDs()...))
	e.commit("clear")
	return n
}

// Copy puts the selected elements on the clipboard and returns how many were copied.
func (e *Editor) Copy() int {
	selected := e.selection.SelectedElements()
	if len(selected) == 0 {
		return 0
	}
	e.clipboard.Copy(selected)
	return len(selected)
}

// Cut copies then deletes the selection.
func (e *Editor) Cut() int {
	if e.Copy() == 0 {
		return 0
	}
	return e.DeleteSelection()
}

// Paste inserts the clipboard content, selects it and commits.
func (e *Editor) Paste() []types.Element {
	e.CancelInteraction()
	pasted := e.clipboard.Paste(e.store.NextID, e.store.NextZIndex)
	if len(pasted) == 0 {
		return pasted
	}
	e.insertAndSelect(pasted, "paste")
	return pasted
}

// Duplicate copies the selection in place with the paste offset, without
// touching the clipboard.
func (e *Editor) Duplicate() []types.Element {
	e.CancelInteraction()
	selected := e.selection.SelectedElements()
	if len(selected) == 0 {
		return nil
	}
	dups := clipboard.Offset(selected, e.cfg.PasteOffset, e.store.NextID, e.store.NextZIndex)
	e.insertAndSelect(dups, "duplicate")
	return dups
}

func (e *Editor) insertAndSelect(els []types.Element, reason string) {
	e.store.Append(els...)
	ids := make([]int, len(els))
	for i, el := range els {
		ids[i] = el.ID
	}
	e.selection.UpdateSelectionFromBox(ids, types.Modifiers{})
	e.commit(reason)
}

// Undo restores the previous history entry. It returns false at the oldest entry.
func (e *Editor) Undo() bool {
	e.CancelInteraction()
	state, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.store.Replace(state)
	e.dispatchHistory()
	return true
}

// Redo re-applies the next history entry. It returns false at the newest entry.
func (e *Editor) Redo() bool {
	e.CancelInteraction()
	state, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.store.Replace(state)
	e.dispatchHistory()
	return true
}

// Nudge moves the selection by (dx, dy) and commits. Ignored during a gesture.
func (e *Editor) Nudge(dx, dy float64) bool {
	if e.interaction.Active() {
		return false
	}
	moved := false
	for _, el := range e.selection.SelectedElements() {
		el.X += dx
		el.Y += dy
		if e.store.UpdateElement(el) {
			moved = true
		}
	}
	if moved {
		e.commit("nudge")
	}
	return moved
}

// UpdateElement replaces one element (property edits from the host) and commits.
func (e *Editor) UpdateElement(el types.Element) bool {
	current, ok := e.store.Get(el.ID)
	if !ok || current == el {
		return false
	}
	if !e.store.UpdateElement(el) {
		return false
	}
	e.commit("update")
	return true
}

// SelectElement forwards to the selection manager.
func (e *Editor) SelectElement(id int, mods types.Modifiers) {
	e.selection.SelectElement(id, mods)
}

func (e *Editor) SelectAll() {
	e.selection.SelectAll()
}

// Escape cancels an active gesture, or clears the selection when idle.
func (e *Editor) Escape() {
	if e.CancelInteraction() {
		return
	}
	e.selection.ClearSelection()
}

// ResetHistory forgets every entry and starts the log from the current document.
func (e *Editor) ResetHistory() {
	e.history.Reset(e.store.Snapshot())
	logger.DebugTagf("history", "history reset to current document")
	e.dispatchHistory()
}
