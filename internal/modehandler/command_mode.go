package modehandler

import (
	"strings"

	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(ae input.ActionEvent) bool {
	switch {
	case ae.Rune != 0:
		// Bound runes still type into the command line.
		mh.cmdBuffer = append(mh.cmdBuffer, ae.Rune)

	case ae.Action == input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
		} else {
			mh.currentMode = ModeNormal
			mh.statusBar.ResetTemporaryMessage()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}

	case ae.Action == input.ActionSubmit:
		mh.currentMode = ModeNormal
		mh.executeCommand()
		return true

	case ae.Action == input.ActionEscape:
		mh.currentMode = ModeNormal
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.ResetTemporaryMessage()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false
	}

	mh.statusBar.SetTemporaryMessage(":%s", string(mh.cmdBuffer))
	return true
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	cmdStr := string(mh.cmdBuffer)
	mh.cmdBuffer = mh.cmdBuffer[:0]

	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		mh.statusBar.ResetTemporaryMessage()
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	// Commands set their own success message; clear the echoed command line first.
	mh.statusBar.ResetTemporaryMessage()
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
