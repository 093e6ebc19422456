// Package interaction turns pointer gestures into move, resize and rotate mutations.
package interaction

import (
	"math"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// State is the gesture currently in progress.
type State int

const (
	Idle State = iota
	Moving
	Resizing
	Rotating
)

func (s State) String() string {
	switch s {
	case Moving:
		return "moving"
	case Resizing:
		return "resizing"
	case Rotating:
		return "rotating"
	}
	return "idle"
}

// DefaultMinSize is the smallest width/height a resize can produce.
const DefaultMinSize = 1.0

// StoreInterface is what the controller reads from and commits to.
type StoreInterface interface {
	Get(id int) (types.Element, bool)
	Elements() []types.Element
	UpdateElement(el types.Element) bool
}

// SelectionInterface exposes the ids moved together with the primary element.
type SelectionInterface interface {
	Set() types.IDSet
}

// SnapInterface snaps the primary element during a move.
type SnapInterface interface {
	Update(moving types.Element, all []types.Element, exclude types.IDSet) types.Element
	Clear()
}

// Controller is the Idle/Moving/Resizing/Rotating state machine.
// It works on snapshots taken at gesture start and only touches the store in Stop.
// History is the caller's responsibility.
type Controller struct {
	store     StoreInterface
	selection SelectionInterface
	snap      SnapInterface
	minSize   float64

	state    State
	start    types.Point
	handle   Handle
	primary  int
	snapshot []types.Element // elements as they were at gesture start
	working  []types.Element // current preview, parallel to snapshot
}

// NewController wires the controller to its collaborators. snap may be nil to disable snapping.
func NewController(store StoreInterface, selection SelectionInterface, snap SnapInterface, minSize float64) *Controller {
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	return &Controller{
		store:     store,
		selection: selection,
		snap:      snap,
		minSize:   minSize,
	}
}

func (c *Controller) State() State   { return c.state }
func (c *Controller) Active() bool   { return c.state != Idle }
func (c *Controller) Handle() Handle { return c.handle }

// PrimaryID returns the id of the element the gesture started on, or 0 when idle.
func (c *Controller) PrimaryID() int { return c.primary }

// StartMove begins moving el together with every selected element.
// It returns false when el is no longer in the store.
func (c *Controller) StartMove(p types.Point, el types.Element) bool {
	c.forceIdle()
	current, ok := c.store.Get(el.ID)
	if !ok {
		return false
	}

	ids := c.selection.Set()
	ids.Add(current.ID)
	var snapshot []types.Element
	for _, e := range c.store.Elements() {
		if ids.Has(e.ID) {
			snapshot = append(snapshot, e)
		}
	}
	c.begin(Moving, p, current.ID, snapshot)
	return true
}

// StartResize begins resizing el from handle. A HandleNone handle resizes from the bottom-right corner.
func (c *Controller) StartResize(p types.Point, el types.Element, handle Handle) bool {
	c.forceIdle()
	current, ok := c.store.Get(el.ID)
	if !ok {
		return false
	}
	if handle == HandleNone {
		handle = HandleSE
	}
	c.handle = handle
	c.begin(Resizing, p, current.ID, []types.Element{current})
	return true
}

// StartRotate begins rotating el about its centre.
func (c *Controller) StartRotate(p types.Point, el types.Element) bool {
	c.forceIdle()
	current, ok := c.store.Get(el.ID)
	if !ok {
		return false
	}
	c.begin(Rotating, p, current.ID, []types.Element{current})
	return true
}

func (c *Controller) begin(state State, p types.Point, primary int, snapshot []types.Element) {
	c.state = state
	c.start = p
	c.primary = primary
	c.snapshot = types.CloneElements(snapshot)
	c.working = types.CloneElements(snapshot)
	logger.DebugTagf("interaction", "start %v on element %d (%d in gesture) at (%.1f,%.1f)", state, primary, len(snapshot), p.X, p.Y)
}

// Update recomputes the preview from the gesture-start snapshot and the pointer position.
// It returns false when no gesture is active.
func (c *Controller) Update(p types.Point) bool {
	if c.state == Idle {
		return false
	}
	d := p.Sub(c.start)

	switch c.state {
	case Moving:
		c.updateMove(d)
	case Resizing:
		c.working[0] = c.resize(c.snapshot[0], d)
	case Rotating:
		c.working[0] = c.rotate(c.snapshot[0], p)
	}
	return true
}

func (c *Controller) updateMove(d types.Point) {
	exclude := make(types.IDSet, len(c.snapshot))
	for _, el := range c.snapshot {
		exclude.Add(el.ID)
	}
	for i, el := range c.snapshot {
		el.X += d.X
		el.Y += d.Y
		c.working[i] = el
	}
	if c.snap == nil {
		return
	}
	// Only the primary element snaps; companions keep the raw delta.
	for i, el := range c.working {
		if el.ID == c.primary {
			c.working[i] = c.snap.Update(el, c.store.Elements(), exclude)
			break
		}
	}
}

func (c *Controller) resize(el types.Element, d types.Point) types.Element {
	h := c.handle
	right := el.X + el.Width
	bottom := el.Y + el.Height

	if h.movesRight() {
		el.Width = math.Max(c.minSize, el.Width+d.X)
	}
	if h.movesLeft() {
		el.Width = math.Max(c.minSize, el.Width-d.X)
		el.X = right - el.Width
	}
	if h.movesBottom() {
		el.Height = math.Max(c.minSize, el.Height+d.Y)
	}
	if h.movesTop() {
		el.Height = math.Max(c.minSize, el.Height-d.Y)
		el.Y = bottom - el.Height
	}
	return el
}

func (c *Controller) rotate(el types.Element, p types.Point) types.Element {
	center := el.Center()
	startAngle := math.Atan2(c.start.Y-center.Y, c.start.X-center.X)
	angle := math.Atan2(p.Y-center.Y, p.X-center.X)
	el.Rotation = NormalizeDegrees(el.Rotation + (angle-startAngle)*180/math.Pi)
	return el
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Working returns copies of the elements being manipulated, as currently previewed.
func (c *Controller) Working() []types.Element {
	return types.CloneElements(c.working)
}

// Stop commits the preview into the store and returns to Idle.
// It returns the committed elements and whether anything actually changed.
func (c *Controller) Stop() ([]types.Element, bool) {
	if c.state == Idle {
		return nil, false
	}
	var committed []types.Element
	for i, el := range c.working {
		if el == c.snapshot[i] {
			continue
		}
		if c.store.UpdateElement(el) {
			committed = append(committed, el)
		}
	}
	logger.DebugTagf("interaction", "stop %v on element %d, %d element(s) committed", c.state, c.primary, len(committed))
	c.reset()
	return committed, len(committed) > 0
}

// Cancel discards the gesture without touching the store.
// It is the recovery path for lost pointer capture and reports whether a gesture was active.
func (c *Controller) Cancel() bool {
	if c.state == Idle {
		return false
	}
	logger.DebugTagf("interaction", "cancel %v on element %d", c.state, c.primary)
	c.reset()
	return true
}

// forceIdle cancels any gesture left over before a new one starts.
func (c *Controller) forceIdle() {
	if c.state != Idle {
		logger.Warnf("interaction: starting a gesture while %v; cancelling the previous one", c.state)
		c.reset()
	}
}

func (c *Controller) reset() {
	c.state = Idle
	c.start = types.Point{}
	c.handle = HandleNone
	c.primary = 0
	c.snapshot = nil
	c.working = nil
	if c.snap != nil {
		c.snap.Clear()
	}
}
