// Package guides computes alignment guides and snapped positions for a moving element.
package guides

import (
	"math"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// DefaultThreshold is the snap distance in canvas units. A candidate matches when
// the distance is strictly below it.
const DefaultThreshold = 5.0

// Guide is one alignment line at a canvas coordinate.
type Guide struct {
	Position float64
}

// Guides holds the lines emitted by the last update. Vertical lines are x
// coordinates, horizontal lines are y coordinates.
type Guides struct {
	Vertical   []Guide
	Horizontal []Guide
}

// Empty reports whether no line is active.
func (g Guides) Empty() bool {
	return len(g.Vertical) == 0 && len(g.Horizontal) == 0
}

// Manager is the snapping engine. It keeps the guides of the most recent update.
type Manager struct {
	threshold float64
	enabled   bool
	guides    Guides
}

// NewManager creates a snap engine. A non-positive threshold falls back to DefaultThreshold.
func NewManager(threshold float64) *Manager {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Manager{threshold: threshold, enabled: true}
}

// SetEnabled turns snapping on or off. When off, Update returns the element unchanged.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.Clear()
	}
}

func (m *Manager) Enabled() bool      { return m.enabled }
func (m *Manager) Threshold() float64 { return m.threshold }

// Clear drops every active guide line.
func (m *Manager) Clear() {
	m.guides = Guides{}
}

// Guides returns a copy of the lines emitted by the last update.
func (m *Manager) Guides() Guides {
	return Guides{
		Vertical:   append([]Guide(nil), m.guides.Vertical...),
		Horizontal: append([]Guide(nil), m.guides.Horizontal...),
	}
}

// Update snaps moving against every element of all whose id is not in exclude
// and returns the adjusted copy. Only X and Y change.
//
// Each axis runs three passes in order (leading edge, centre, trailing edge).
// Every pass reads the position left by the previous one and may override it,
// and every pass that matches emits a guide, so up to three lines per axis can
// appear even when they disagree with each other.
func (m *Manager) Update(moving types.Element, all []types.Element, exclude types.IDSet) types.Element {
	m.Clear()
	if !m.enabled {
		return moving
	}

	vertical, horizontal := candidates(all, exclude)

	x := moving.X
	x = m.snap(x, vertical, &m.guides.Vertical)
	x = m.snap(x+moving.Width/2, vertical, &m.guides.Vertical) - moving.Width/2
	x = m.snap(x+moving.Width, vertical, &m.guides.Vertical) - moving.Width

	y := moving.Y
	y = m.snap(y, horizontal, &m.guides.Horizontal)
	y = m.snap(y+moving.Height/2, horizontal, &m.guides.Horizontal) - moving.Height/2
	y = m.snap(y+moving.Height, horizontal, &m.guides.Horizontal) - moving.Height

	if x != moving.X || y != moving.Y {
		logger.DebugTagf("guides", "element %d snapped (%.1f,%.1f) -> (%.1f,%.1f)", moving.ID, moving.X, moving.Y, x, y)
	}
	moving.X = x
	moving.Y = y
	return moving
}

// snap returns the first candidate within the threshold of value, recording a
// guide for it, or value itself when nothing matches.
func (m *Manager) snap(value float64, candidates []float64, out *[]Guide) float64 {
	for _, c := range candidates {
		if math.Abs(value-c) < m.threshold {
			*out = append(*out, Guide{Position: c})
			return c
		}
	}
	return value
}

// candidates collects the edge and centre coordinates of every non-excluded
// element, deduplicated while keeping first-insertion order.
func candidates(all []types.Element, exclude types.IDSet) (vertical, horizontal []float64) {
	seenV := make(map[float64]struct{})
	seenH := make(map[float64]struct{})
	add := func(list []float64, seen map[float64]struct{}, v float64) []float64 {
		if _, ok := seen[v]; ok {
			return list
		}
		seen[v] = struct{}{}
		return append(list, v)
	}

	for _, el := range all {
		if exclude.Has(el.ID) {
			continue
		}
		vertical = add(vertical, seenV, el.X)
		vertical = add(vertical, seenV, el.X+el.Width/2)
		vertical = add(vertical, seenV, el.X+el.Width)

		horizontal = add(horizontal, seenH, el.Y)
		horizontal = add(horizontal, seenH, el.Y+el.Height/2)
		horizontal = add(horizontal, seenH, el.Y+el.Height)
	}
	return vertical, horizontal
}
