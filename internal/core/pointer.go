package core

import (
	"github.com/bethropolis/slate/internal/core/interaction"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// PointerDown starts whatever gesture the position calls for: rotate or resize
// through the handles of a single selected element, move when it lands on an
// element, otherwise a rubber-band selection.
func (e *Editor) PointerDown(p types.Point, mods types.Modifiers) {
	// A press while a gesture is still open means the release was lost.
	e.CancelInteraction()

	tol := e.cfg.HandleTolerance
	if sel, ok := e.selection.SelectedElement(); ok && !mods.Multi() {
		if interaction.OnRotateHandle(sel, p, tol) {
			if e.interaction.StartRotate(p, sel) {
				e.interactionStarted()
			}
			return
		}
		if h := interaction.HandleAt(sel, p, tol); h != interaction.HandleNone {
			if e.interaction.StartResize(p, sel, h) {
				e.interactionStarted()
			}
			return
		}
	}

	el, ok := e.store.ElementAtPosition(p.X, p.Y)
	if !ok {
		e.boxing = true
		e.boxStart, e.boxEnd = p, p
		logger.DebugTagf("interaction", "box selection from (%.1f,%.1f)", p.X, p.Y)
		return
	}

	switch {
	case mods.Multi():
		e.selection.SelectElement(el.ID, mods)
		if !e.selection.Contains(el.ID) {
			return // toggled off, nothing to drag
		}
	case !e.selection.Contains(el.ID):
		e.selection.SelectElement(el.ID, mods)
	}
	// Pressing on an already selected element keeps the group so it moves together.
	if e.interaction.StartMove(p, el) {
		e.interactionStarted()
	}
}

// PointerMove advances the active gesture or rubber band.
// It returns true when something visible changed.
func (e *Editor) PointerMove(p types.Point) bool {
	if e.interaction.Active() {
		return e.interaction.Update(p)
	}
	if e.boxing {
		e.boxEnd = p
		return true
	}
	return false
}

// PointerUp finishes the active gesture. A gesture that changed the document
// is committed to history; a rubber band resolves into a selection.
func (e *Editor) PointerUp(p types.Point, mods types.Modifiers) {
	if e.interaction.Active() {
		e.interaction.Update(p)
		state, primary := e.interaction.State(), e.interaction.PrimaryID()
		_, changed := e.interaction.Stop()
		if changed {
			e.commit(state.String())
		}
		e.eventManager.Dispatch(event.TypeInteractionEnded, event.InteractionData{
			State:     state.String(),
			ElementID: primary,
			Committed: changed,
		})
		return
	}

	if e.boxing {
		e.boxEnd = p
		box := types.RectFromPoints(e.boxStart, e.boxEnd)
		e.boxing = false
		ids := e.store.ElementsInRect(box)
		logger.DebugTagf("interaction", "box selection %+v hit %v", box, ids)
		e.selection.UpdateSelectionFromBox(ids, mods)
	}
}

// CancelInteraction abandons any gesture or rubber band without touching the
// document. Hosts call it when pointer capture is lost. It reports whether
// anything was cancelled.
func (e *Editor) CancelInteraction() bool {
	cancelled := false
	if e.interaction.Active() {
		state, primary := e.interaction.State(), e.interaction.PrimaryID()
		e.interaction.Cancel()
		e.eventManager.Dispatch(event.TypeInteractionEnded, event.InteractionData{
			State:     state.String(),
			ElementID: primary,
		})
		cancelled = true
	}
	if e.boxing {
		e.boxing = false
		cancelled = true
	}
	return cancelled
}

func (e *Editor) interactionStarted() {
	e.eventManager.Dispatch(event.TypeInteractionStarted, event.InteractionData{
		State:     e.interaction.State().String(),
		ElementID: e.interaction.PrimaryID(),
	})
}
