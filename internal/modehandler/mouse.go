package modehandler

import (
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// HandleMouseEvent turns terminal mouse reports into pointer calls on the
// editor: press -> PointerDown, motion with the button held -> PointerMove,
// release -> PointerUp. A release outside the canvas area means the gesture
// lost capture and is cancelled instead of committed.
// Returns true if a redraw is needed.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	col, row := ev.Position()
	cols, rows := mh.viewSize()
	outside := col < 0 || row < 0 || col >= cols || row >= rows

	pe := input.FromMouse(ev, mh.viewport.Scale)
	p, ok := input.CanvasPosition(pe, mh.viewport.Surface())
	if !ok {
		return false
	}
	down := input.PrimaryDown(ev)

	switch {
	case down && !mh.buttonDown:
		if outside {
			return false
		}
		if mh.currentMode == ModeCommand {
			mh.currentMode = ModeNormal
			mh.cmdBuffer = mh.cmdBuffer[:0]
			mh.statusBar.ResetTemporaryMessage()
		}
		mh.buttonDown = true
		mh.pointer = p
		mh.editor.PointerDown(p, pe.Modifiers())
		return true

	case down && mh.buttonDown:
		mh.pointer = p
		mh.editor.PointerMove(p)
		return true

	case !down && mh.buttonDown:
		mh.buttonDown = false
		if outside {
			if mh.editor.CancelInteraction() {
				logger.DebugTagf("interaction", "released outside the canvas at cell (%d,%d), cancelled", col, row)
				mh.statusBar.SetTemporaryMessage("Gesture cancelled")
			}
			return true
		}
		mh.pointer = p
		mh.editor.PointerUp(p, pe.Modifiers())
		return true
	}

	if !outside {
		mh.pointer = p
	}
	return false
}

// HandleFocusEvent cancels any gesture when the terminal loses focus, since
// the release will never be reported.
func (mh *ModeHandler) HandleFocusEvent(ev *tcell.EventFocus) bool {
	if ev.Focused {
		return false
	}
	mh.buttonDown = false
	if mh.editor.CancelInteraction() {
		logger.DebugTagf("interaction", "focus lost, gesture cancelled")
		mh.statusBar.SetTemporaryMessage("Gesture cancelled")
		return true
	}
	return false
}
