package modehandler

import (
	"fmt"

	"github.com/bethropolis/slate/internal/core/elements"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/templates"
	"github.com/bethropolis/slate/internal/types"
)

const (
	panStep      = 1
	panStepLarge = 5
)

// executeAction handles actions when in ModeNormal.
func (mh *ModeHandler) executeAction(ae input.ActionEvent) bool {
	actionProcessed := true
	cfg := mh.editor.CanvasConfig()

	switch ae.Action {
	case input.ActionEnterCommandMode:
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetTemporaryMessage(":")
		logger.Debugf("ModeHandler: Entering Command Mode")

	case input.ActionQuit:
		if mh.editor.Store().Len() > 0 && !mh.forceQuitPending {
			mh.statusBar.SetTemporaryMessage("The canvas is not saved anywhere. Press q again or Ctrl+Q to quit.")
			mh.forceQuitPending = true
			return true
		}
		mh.quit()
		return false
	case input.ActionForceQuit:
		mh.quit()
		return false

	case input.ActionAddRectangle:
		actionProcessed = mh.addAtCenter(types.Rectangle)
	case input.ActionAddCircle:
		actionProcessed = mh.addAtCenter(types.Circle)
	case input.ActionAddText:
		actionProcessed = mh.addAtCenter(types.Text)
	case input.ActionAddTemplate:
		if _, err := mh.InsertTemplate(templates.ProfileCardName); err != nil {
			mh.statusBar.SetTemporaryMessage("Template failed: %v", err)
		}

	case input.ActionDelete, input.ActionDeleteCharBackward:
		if n := mh.editor.DeleteSelection(); n > 0 {
			mh.statusBar.SetTemporaryMessage("Deleted %d element(s)", n)
		} else {
			actionProcessed = false
		}
	case input.ActionSelectAll:
		mh.editor.SelectAll()
	case input.ActionEscape:
		mh.editor.Escape()
	case input.ActionToggleSnap:
		mh.editor.SetSnapEnabled(!mh.editor.SnapEnabled())
		if mh.editor.SnapEnabled() {
			mh.statusBar.SetTemporaryMessage("Snapping on")
		} else {
			mh.statusBar.SetTemporaryMessage("Snapping off")
		}

	case input.ActionCopy:
		if n := mh.editor.Copy(); n > 0 {
			mh.statusBar.SetTemporaryMessage("Copied %d element(s)", n)
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		}
	case input.ActionCut:
		if n := mh.editor.Cut(); n > 0 {
			mh.statusBar.SetTemporaryMessage("Cut %d element(s)", n)
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing selected to cut")
		}
	case input.ActionPaste:
		if pasted := mh.editor.Paste(); len(pasted) > 0 {
			mh.statusBar.SetTemporaryMessage("Pasted %d element(s)", len(pasted))
		} else {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
		}
	case input.ActionDuplicate:
		if dups := mh.editor.Duplicate(); len(dups) == 0 {
			mh.statusBar.SetTemporaryMessage("Nothing selected to duplicate")
		}

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionNudgeUp, input.ActionNudgeDown, input.ActionNudgeLeft, input.ActionNudgeRight:
		step := cfg.NudgeStep
		if ae.Large {
			step = cfg.NudgeStepLarge
		}
		var dx, dy float64
		switch ae.Action {
		case input.ActionNudgeUp:
			dy = -step
		case input.ActionNudgeDown:
			dy = step
		case input.ActionNudgeLeft:
			dx = -step
		case input.ActionNudgeRight:
			dx = step
		}
		actionProcessed = mh.editor.Nudge(dx, dy)

	case input.ActionPanUp, input.ActionPanDown, input.ActionPanLeft, input.ActionPanRight:
		step := panStep
		if ae.Large {
			step = panStepLarge
		}
		switch ae.Action {
		case input.ActionPanUp:
			mh.viewport.Pan(0, -step)
		case input.ActionPanDown:
			mh.viewport.Pan(0, step)
		case input.ActionPanLeft:
			mh.viewport.Pan(-step, 0)
		case input.ActionPanRight:
			mh.viewport.Pan(step, 0)
		}
	case input.ActionPanReset:
		mh.viewport.Reset()

	default:
		actionProcessed = false
	}

	if ae.Action != input.ActionQuit && ae.Action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

// placement returns the top-left that centres a w×h element in the view.
func (mh *ModeHandler) placement(w, h float64) (float64, float64) {
	cols, rows := mh.viewSize()
	c := mh.viewport.Center(cols, rows)
	return c.X - w/2, c.Y - h/2
}

func (mh *ModeHandler) addAtCenter(t types.ElementType) bool {
	x, y := mh.placement(elements.DefaultWidth, elements.DefaultHeight)
	el, err := mh.editor.AddElement(t, x, y)
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Add failed: %v", err)
		return false
	}
	logger.DebugTagf("input", "added %s #%d at (%.0f,%.0f)", t, el.ID, el.X, el.Y)
	return true
}

// InsertTemplate places the named template at the centre of the view.
func (mh *ModeHandler) InsertTemplate(name string) (types.Element, error) {
	tpl, ok := mh.templates.Get(name)
	if !ok {
		return types.Element{}, fmt.Errorf("template '%s' not found", name)
	}
	x, y := mh.placement(tpl.Width, tpl.Height)
	return mh.editor.AddTemplate(tpl.Data(), x, y)
}
