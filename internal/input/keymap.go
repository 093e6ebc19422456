// internal/input/keymap.go
package input

import (
	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For plain rune bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell key events into ActionEvents.
// Mode is not handled here: the mode handler decides what an action means.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionNudgeUp
	p.keymap[tcell.KeyDown] = ActionNudgeDown
	p.keymap[tcell.KeyLeft] = ActionNudgeLeft
	p.keymap[tcell.KeyRight] = ActionNudgeRight
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyEscape] = ActionEscape
	p.keymap[tcell.KeyEnter] = ActionSubmit
	p.keymap[tcell.KeyHome] = ActionPanReset

	// --- Ctrl chords. tcell reports these as their own keys. ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlA] = ActionSelectAll
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlD] = ActionDuplicate
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings ---
	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['r'] = ActionAddRectangle
	p.runeKeymap['c'] = ActionAddCircle
	p.runeKeymap['t'] = ActionAddText
	p.runeKeymap['p'] = ActionAddTemplate
	p.runeKeymap['s'] = ActionToggleSnap
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['U'] = ActionRedo
	p.runeKeymap['x'] = ActionDelete
	p.runeKeymap['d'] = ActionDuplicate
	p.runeKeymap['h'] = ActionPanLeft
	p.runeKeymap['j'] = ActionPanDown
	p.runeKeymap['k'] = ActionPanUp
	p.runeKeymap['l'] = ActionPanRight
	p.runeKeymap['H'] = ActionPanLeft
	p.runeKeymap['J'] = ActionPanDown
	p.runeKeymap['K'] = ActionPanUp
	p.runeKeymap['L'] = ActionPanRight
}

// Bind maps a plain rune to an action, replacing any previous binding.
func (p *InputProcessor) Bind(r rune, action Action) {
	logger.DebugTagf("input", "bind %q -> %s", r, action)
	p.runeKeymap[r] = action
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()
	large := mod&tcell.ModShift != 0

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter arrives as its own key, sometimes without the Ctrl bit.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 2. Simple Key mappings; Shift is allowed and selects the large step.
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Large: large}
		}
	}

	// 3. Rune mappings. Shift is folded into the rune by the terminal.
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal, Large: runeVal >= 'A' && runeVal <= 'Z'}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
