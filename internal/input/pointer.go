package input

import (
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// PointerKind tells mouse-style events from touch events.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Touch is one contact point of a touch event, in client coordinates.
type Touch struct {
	ClientX, ClientY float64
}

// PointerEvent is a host pointer or touch event in client coordinates.
type PointerEvent struct {
	Kind             PointerKind
	ClientX, ClientY float64
	Touches          []Touch
	Ctrl, Meta       bool
	Shift            bool
}

// Modifiers returns the keyboard modifiers held during the event.
func (ev PointerEvent) Modifiers() types.Modifiers {
	return types.Modifiers{Ctrl: ev.Ctrl, Meta: ev.Meta, Shift: ev.Shift}
}

// Surface is the reference surface events are normalised against: the
// client-space position of the canvas origin.
type Surface struct {
	Left, Top float64
}

// CanvasPosition converts ev to canvas-local coordinates by subtracting the
// surface origin. Touch events use their first touch point; a touch event
// with no touches (a lift) has no position.
func CanvasPosition(ev PointerEvent, s Surface) (types.Point, bool) {
	x, y := ev.ClientX, ev.ClientY
	if ev.Kind == PointerTouch {
		if len(ev.Touches) == 0 {
			return types.Point{}, false
		}
		x, y = ev.Touches[0].ClientX, ev.Touches[0].ClientY
	}
	return types.Point{X: x - s.Left, Y: y - s.Top}, true
}

// CellScale is the size of one terminal cell in client units.
type CellScale struct {
	Width, Height float64
}

// ClientPoint returns the client-space centre of the cell (col, row).
func (c CellScale) ClientPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.Width, (float64(row) + 0.5) * c.Height
}

// CellOf is the inverse of ClientPoint: the cell containing client point (x, y).
func (c CellScale) CellOf(x, y float64) (int, int) {
	return floorDiv(x, c.Width), floorDiv(y, c.Height)
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// FromMouse adapts a terminal mouse event. The cell under the pointer is
// reported as the client-space centre of that cell.
func FromMouse(ev *tcell.EventMouse, scale CellScale) PointerEvent {
	col, row := ev.Position()
	x, y := scale.ClientPoint(col, row)
	mod := ev.Modifiers()
	return PointerEvent{
		Kind:    PointerMouse,
		ClientX: x,
		ClientY: y,
		Ctrl:    mod&tcell.ModCtrl != 0,
		Meta:    mod&(tcell.ModAlt|tcell.ModMeta) != 0,
		Shift:   mod&tcell.ModShift != 0,
	}
}

// PrimaryDown reports whether the primary button is held in ev.
func PrimaryDown(ev *tcell.EventMouse) bool {
	return ev.Buttons()&tcell.Button1 != 0
}
