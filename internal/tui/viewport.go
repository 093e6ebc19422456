package tui

import (
	"math"

	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/types"
)

// Viewport maps canvas units to terminal cells. X/Y is the canvas point shown
// at the top-left cell.
type Viewport struct {
	X, Y  float64
	Scale input.CellScale
}

// NewViewport creates a viewport at the canvas origin.
func NewViewport(scale input.CellScale) *Viewport {
	return &Viewport{Scale: scale}
}

// Pan scrolls by whole cells.
func (v *Viewport) Pan(cols, rows int) {
	v.X += float64(cols) * v.Scale.Width
	v.Y += float64(rows) * v.Scale.Height
}

// Reset returns to the canvas origin.
func (v *Viewport) Reset() {
	v.X, v.Y = 0, 0
}

// Surface is the reference surface for input normalisation: the canvas
// origin expressed in client coordinates.
func (v *Viewport) Surface() input.Surface {
	return input.Surface{Left: -v.X, Top: -v.Y}
}

// ToCell returns the cell containing canvas point p.
func (v *Viewport) ToCell(p types.Point) (int, int) {
	return int(math.Floor((p.X - v.X) / v.Scale.Width)), int(math.Floor((p.Y - v.Y) / v.Scale.Height))
}

// CellRect returns the inclusive cell span covered by r. Degenerate rects
// still cover the cell their origin falls in.
func (v *Viewport) CellRect(r types.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.ToCell(types.Point{X: r.X, Y: r.Y})
	c1 = int(math.Ceil((r.Right()-v.X)/v.Scale.Width)) - 1
	r1 = int(math.Ceil((r.Bottom()-v.Y)/v.Scale.Height)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

// Center is the canvas point at the middle of a w×h cell area.
func (v *Viewport) Center(w, h int) types.Point {
	return types.Point{
		X: v.X + float64(w)*v.Scale.Width/2,
		Y: v.Y + float64(h)*v.Scale.Height/2,
	}
}
