package interaction

import (
	"math"
	"testing"

	"github.com/bethropolis/slate/internal/core/elements"
	"github.com/bethropolis/slate/internal/core/guides"
	"github.com/bethropolis/slate/internal/core/selection"
	"github.com/bethropolis/slate/internal/types"
)

type fixture struct {
	store *elements.Manager
	sel   *selection.Manager
	snap  *guides.Manager
	ctl   *Controller
}

func newFixture(t *testing.T, els ...types.Element) *fixture {
	t.Helper()
	store := elements.NewManager()
	store.Replace(els)
	sel := selection.NewManager(store)
	snap := guides.NewManager(guides.DefaultThreshold)
	return &fixture{
		store: store,
		sel:   sel,
		snap:  snap,
		ctl:   NewController(store, sel, snap, 1),
	}
}

func (f *fixture) get(t *testing.T, id int) types.Element {
	t.Helper()
	el, ok := f.store.Get(id)
	if !ok {
		t.Fatalf("element %d missing", id)
	}
	return el
}

func pt(x, y float64) types.Point { return types.Point{X: x, Y: y} }

func TestMoveAppliesDeltaFromSnapshot(t *testing.T) {
	f := newFixture(t,
		types.Element{ID: 1, X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1},
		types.Element{ID: 2, X: 1000, Y: 1000, Width: 10, Height: 10, ZIndex: 2},
	)
	f.sel.SelectElement(1, types.Modifiers{})

	if !f.ctl.StartMove(pt(5, 5), f.get(t, 1)) {
		t.Fatalf("StartMove failed")
	}
	if f.ctl.State() != Moving {
		t.Fatalf("expected Moving, got %v", f.ctl.State())
	}
	// Several updates must not accumulate drift.
	f.ctl.Update(pt(100, 300))
	f.ctl.Update(pt(50, 205))
	w := f.ctl.Working()
	if len(w) != 1 || w[0].X != 45 || w[0].Y != 200 {
		t.Fatalf("unexpected preview %+v", w)
	}
	if f.get(t, 1).X != 0 {
		t.Fatalf("store must not change before Stop")
	}

	committed, changed := f.ctl.Stop()
	if !changed || len(committed) != 1 {
		t.Fatalf("expected one committed element, got %v %v", committed, changed)
	}
	if el := f.get(t, 1); el.X != 45 || el.Y != 200 {
		t.Fatalf("expected committed position (45,200), got (%v,%v)", el.X, el.Y)
	}
	if f.ctl.State() != Idle || f.ctl.Working() != nil {
		t.Fatalf("controller must return to Idle with no snapshot")
	}
}

func TestMoveSnapsOnlyPrimary(t *testing.T) {
	f := newFixture(t,
		types.Element{ID: 1, X: 100, Y: 0, Width: 50, Height: 50, ZIndex: 1},
		types.Element{ID: 2, X: 100, Y: 300, Width: 50, Height: 50, ZIndex: 2},
		types.Element{ID: 3, X: 154, Y: 700, Width: 100, Height: 100, ZIndex: 3},
	)
	f.sel.SelectElement(1, types.Modifiers{})
	f.sel.SelectElement(2, types.Modifiers{Ctrl: true})

	f.ctl.StartMove(pt(0, 0), f.get(t, 1))
	f.ctl.Update(pt(3, 0)) // primary right edge 153 -> snaps to 154

	var primary, companion types.Element
	for _, el := range f.ctl.Working() {
		switch el.ID {
		case 1:
			primary = el
		case 2:
			companion = el
		}
	}
	if primary.X != 104 {
		t.Fatalf("expected primary snapped to 104, got %v", primary.X)
	}
	if companion.X != 103 {
		t.Fatalf("expected companion to follow raw delta (103), got %v", companion.X)
	}
	if g := f.snap.Guides().Vertical; len(g) != 1 || g[0].Position != 154 {
		t.Fatalf("expected vertical guide at 154, got %v", g)
	}

	f.ctl.Stop()
	if !f.snap.Guides().Empty() {
		t.Fatalf("guides must be cleared when the gesture ends")
	}
}

func TestMoveIncludesPrimaryOutsideSelection(t *testing.T) {
	f := newFixture(t,
		types.Element{ID: 1, X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1},
		types.Element{ID: 2, X: 500, Y: 500, Width: 10, Height: 10, ZIndex: 2},
	)
	f.sel.SelectElement(2, types.Modifiers{})
	f.ctl.StartMove(pt(0, 0), f.get(t, 1))
	if len(f.ctl.Working()) != 2 {
		t.Fatalf("expected selection plus primary in the snapshot, got %d", len(f.ctl.Working()))
	}
}

func TestResizeHandles(t *testing.T) {
	base := types.Element{ID: 1, X: 100, Y: 100, Width: 50, Height: 40, ZIndex: 1}
	tests := []struct {
		name   string
		handle Handle
		to     types.Point
		want   types.Rect
	}{
		{"east grows", HandleE, pt(20, 0), types.Rect{X: 100, Y: 100, Width: 70, Height: 40}},
		{"south-east", HandleSE, pt(10, 10), types.Rect{X: 100, Y: 100, Width: 60, Height: 50}},
		{"west moves origin", HandleW, pt(-10, 0), types.Rect{X: 90, Y: 100, Width: 60, Height: 40}},
		{"north moves origin", HandleN, pt(0, 15), types.Rect{X: 100, Y: 115, Width: 50, Height: 25}},
		{"east clamps", HandleE, pt(-500, 0), types.Rect{X: 100, Y: 100, Width: 1, Height: 40}},
		{"north-west clamps", HandleNW, pt(500, 500), types.Rect{X: 149, Y: 139, Width: 1, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, base)
			f.ctl.StartResize(pt(0, 0), base, tt.handle)
			f.ctl.Update(tt.to)
			got := f.ctl.Working()[0].Bounds()
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got.Width <= 0 || got.Height <= 0 {
				t.Fatalf("size went non-positive: %+v", got)
			}
		})
	}
}

func TestRotateAboutCenter(t *testing.T) {
	el := types.Element{ID: 1, X: 0, Y: 0, Width: 100, Height: 100, Rotation: 350, ZIndex: 1}
	f := newFixture(t, el)

	// Start directly right of the centre (50,50), move to directly below: +90 degrees.
	f.ctl.StartRotate(pt(100, 50), el)
	f.ctl.Update(pt(50, 100))
	got := f.ctl.Working()[0].Rotation
	if math.Abs(got-80) > 1e-9 {
		t.Fatalf("expected rotation 80, got %v", got)
	}
}

func TestCancelDiscardsGesture(t *testing.T) {
	el := types.Element{ID: 1, X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1}
	f := newFixture(t, el)
	f.ctl.StartMove(pt(0, 0), el)
	f.ctl.Update(pt(40, 40))

	if !f.ctl.Cancel() {
		t.Fatalf("Cancel should report an active gesture")
	}
	if f.ctl.State() != Idle {
		t.Fatalf("expected Idle after cancel")
	}
	if got := f.get(t, 1); got.X != 0 || got.Y != 0 {
		t.Fatalf("cancel must not commit, got (%v,%v)", got.X, got.Y)
	}
	if f.ctl.Update(pt(1, 1)) {
		t.Fatalf("Update while Idle must be a no-op")
	}
	if _, changed := f.ctl.Stop(); changed {
		t.Fatalf("Stop while Idle must be a no-op")
	}
	if f.ctl.Cancel() {
		t.Fatalf("second Cancel should report nothing to cancel")
	}
}

func TestStartWhileActiveResetsFirst(t *testing.T) {
	el := types.Element{ID: 1, X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1}
	f := newFixture(t, el)
	f.ctl.StartMove(pt(0, 0), el)
	f.ctl.Update(pt(30, 30))

	f.ctl.StartRotate(pt(0, 0), el)
	if f.ctl.State() != Rotating {
		t.Fatalf("expected Rotating, got %v", f.ctl.State())
	}
	w := f.ctl.Working()
	if len(w) != 1 || w[0].X != 0 {
		t.Fatalf("stale move snapshot leaked into the new gesture: %+v", w)
	}
}

func TestStopWithoutChangeCommitsNothing(t *testing.T) {
	el := types.Element{ID: 1, X: 0, Y: 0, Width: 10, Height: 10, ZIndex: 1}
	f := newFixture(t, el)
	f.ctl.StartMove(pt(3, 3), el)
	f.ctl.Update(pt(3, 3))
	if committed, changed := f.ctl.Stop(); changed || committed != nil {
		t.Fatalf("expected no commit, got %v", committed)
	}
}

func TestStartOnMissingElement(t *testing.T) {
	f := newFixture(t)
	if f.ctl.StartMove(pt(0, 0), types.Element{ID: 9}) {
		t.Fatalf("StartMove on a stale element should fail")
	}
	if f.ctl.Active() {
		t.Fatalf("controller should stay Idle")
	}
}

func TestHandleHitTesting(t *testing.T) {
	el := types.Element{X: 100, Y: 100, Width: 100, Height: 80}
	tests := []struct {
		p    types.Point
		want Handle
	}{
		{pt(100, 100), HandleNW},
		{pt(205, 185), HandleSE},
		{pt(150, 100), HandleN},
		{pt(200, 140), HandleE},
		{pt(150, 140), HandleNone},
	}
	for _, tt := range tests {
		if got := HandleAt(el, tt.p, 10); got != tt.want {
			t.Errorf("HandleAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !OnRotateHandle(el, pt(150, 80), 10) {
		t.Fatalf("expected rotate handle at (150,80)")
	}
	if OnRotateHandle(el, pt(150, 140), 10) {
		t.Fatalf("centre is not the rotate handle")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	for in, want := range map[float64]float64{-90: 270, 360: 0, 725: 5, 45: 45} {
		if got := NormalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}
