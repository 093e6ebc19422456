package guides

import (
	"reflect"
	"testing"

	"github.com/bethropolis/slate/internal/types"
)

func positions(gs []Guide) []float64 {
	out := make([]float64, len(gs))
	for i, g := range gs {
		out[i] = g.Position
	}
	return out
}

func TestSnapRightEdgeToNeighbourLeftEdge(t *testing.T) {
	m := NewManager(0)
	b := types.Element{ID: 2, X: 154, Y: 500, Width: 100, Height: 100}

	for _, offset := range []float64{-4, -1, 0, 2, 4} {
		a := types.Element{ID: 1, X: 104 + offset, Y: 0, Width: 50, Height: 50}
		got := m.Update(a, []types.Element{a, b}, types.NewIDSet(1))
		if got.X != 104 {
			t.Fatalf("offset %v: expected x=104, got %v", offset, got.X)
		}
		if v := positions(m.Guides().Vertical); !reflect.DeepEqual(v, []float64{154}) {
			t.Fatalf("offset %v: expected vertical guide at 154, got %v", offset, v)
		}
		if len(m.Guides().Horizontal) != 0 {
			t.Fatalf("offset %v: unexpected horizontal guides %v", offset, m.Guides().Horizontal)
		}
	}
}

func TestThresholdIsStrict(t *testing.T) {
	m := NewManager(5)
	other := types.Element{ID: 2, X: 0, Y: 1000, Width: 1000, Height: 10}
	moving := types.Element{ID: 1, X: 5, Y: 0, Width: 1, Height: 1}

	got := m.Update(moving, []types.Element{other}, nil)
	if got.X != 5 || !m.Guides().Empty() {
		t.Fatalf("distance equal to threshold must not snap, got x=%v guides=%v", got.X, m.Guides())
	}
}

func TestPassesCascadeAndEmitMultipleGuides(t *testing.T) {
	m := NewManager(5)
	other := types.Element{ID: 2, X: 0, Y: 1000, Width: 10, Height: 10} // candidates 0, 5, 10
	moving := types.Element{ID: 1, X: 2, Y: 0, Width: 10, Height: 1}

	got := m.Update(moving, []types.Element{other}, nil)
	if got.X != 0 {
		t.Fatalf("expected x=0, got %v", got.X)
	}
	if v := positions(m.Guides().Vertical); !reflect.DeepEqual(v, []float64{0, 5, 10}) {
		t.Fatalf("expected guides [0 5 10], got %v", v)
	}
}

func TestFirstCandidateInInsertionOrderWins(t *testing.T) {
	m := NewManager(5)
	first := types.Element{ID: 2, X: 10, Y: 5000, Width: 100, Height: 10}
	closer := types.Element{ID: 3, X: 12, Y: 5000, Width: 100, Height: 10}
	moving := types.Element{ID: 1, X: 13, Y: 0, Width: 1000, Height: 1}

	got := m.Update(moving, []types.Element{first, closer}, nil)
	if got.X != 10 {
		t.Fatalf("expected first inserted candidate 10, got %v", got.X)
	}
}

func TestExcludedElementsAreNotCandidates(t *testing.T) {
	m := NewManager(5)
	selected := types.Element{ID: 2, X: 50, Y: 50, Width: 10, Height: 10}
	moving := types.Element{ID: 1, X: 52, Y: 52, Width: 10, Height: 10}

	got := m.Update(moving, []types.Element{moving, selected}, types.NewIDSet(1, 2))
	if got.X != 52 || got.Y != 52 || !m.Guides().Empty() {
		t.Fatalf("selected elements must not attract, got %+v", got)
	}
}

func TestUpdateClearsStaleGuidesAndKeepsSize(t *testing.T) {
	m := NewManager(5)
	other := types.Element{ID: 2, X: 0, Y: 0, Width: 100, Height: 100}
	moving := types.Element{ID: 1, X: 1, Y: 1, Width: 30, Height: 40, Rotation: 15}

	got := m.Update(moving, []types.Element{other}, nil)
	if m.Guides().Empty() {
		t.Fatalf("expected guides after snapping")
	}
	if got.Width != 30 || got.Height != 40 || got.Rotation != 15 {
		t.Fatalf("size/rotation must be untouched, got %+v", got)
	}

	far := types.Element{ID: 1, X: 400, Y: 400, Width: 30, Height: 40}
	m.Update(far, []types.Element{other}, nil)
	if !m.Guides().Empty() {
		t.Fatalf("stale guides survived an update: %+v", m.Guides())
	}
}

func TestDisabledSnapping(t *testing.T) {
	m := NewManager(5)
	m.SetEnabled(false)
	other := types.Element{ID: 2, X: 0, Y: 0, Width: 100, Height: 100}
	moving := types.Element{ID: 1, X: 2, Y: 2, Width: 10, Height: 10}
	if got := m.Update(moving, []types.Element{other}, nil); got != moving {
		t.Fatalf("disabled engine changed element: %+v", got)
	}
}
