package interaction

import (
	"math"

	"github.com/bethropolis/slate/internal/types"
)

// Handle identifies the grip a resize gesture started from.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

var handleNames = [...]string{"none", "n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (h Handle) String() string {
	if int(h) < len(handleNames) {
		return handleNames[h]
	}
	return "unknown"
}

func (h Handle) movesLeft() bool   { return h == HandleW || h == HandleNW || h == HandleSW }
func (h Handle) movesRight() bool  { return h == HandleE || h == HandleNE || h == HandleSE }
func (h Handle) movesTop() bool    { return h == HandleN || h == HandleNE || h == HandleNW }
func (h Handle) movesBottom() bool { return h == HandleS || h == HandleSE || h == HandleSW }

// HandlePoints returns the canvas position of every resize handle of el.
// Corners come first so they win over edge midpoints on small elements.
func HandlePoints(el types.Element) map[Handle]types.Point {
	r := el.Bounds()
	c := r.Center()
	return map[Handle]types.Point{
		HandleNW: {X: r.X, Y: r.Y},
		HandleNE: {X: r.Right(), Y: r.Y},
		HandleSE: {X: r.Right(), Y: r.Bottom()},
		HandleSW: {X: r.X, Y: r.Bottom()},
		HandleN:  {X: c.X, Y: r.Y},
		HandleE:  {X: r.Right(), Y: c.Y},
		HandleS:  {X: c.X, Y: r.Bottom()},
		HandleW:  {X: r.X, Y: c.Y},
	}
}

var handleOrder = []Handle{HandleNW, HandleNE, HandleSE, HandleSW, HandleN, HandleE, HandleS, HandleW}

// HandleAt returns the resize handle of el within tolerance of p.
func HandleAt(el types.Element, p types.Point, tolerance float64) Handle {
	points := HandlePoints(el)
	for _, h := range handleOrder {
		if near(points[h], p, tolerance) {
			return h
		}
	}
	return HandleNone
}

// RotatePoint is where the rotation grip sits: above the top edge, centred.
func RotatePoint(el types.Element, tolerance float64) types.Point {
	return types.Point{X: el.X + el.Width/2, Y: el.Y - 2*tolerance}
}

// OnRotateHandle reports whether p is within tolerance of el's rotation grip.
func OnRotateHandle(el types.Element, p types.Point, tolerance float64) bool {
	return near(RotatePoint(el, tolerance), p, tolerance)
}

func near(a, b types.Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance
}
