package clipboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/bethropolis/slate/internal/types"
)

type fakeSystem struct {
	text     string
	writeErr error
	readErr  error
	writes   int
}

func (f *fakeSystem) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.text = text
	return nil
}

func (f *fakeSystem) ReadAll() (string, error) { return f.text, f.readErr }

func counter(start int) Allocator {
	n := start
	return func() int {
		v := n
		n++
		return v
	}
}

func TestPasteOffsetsAndReallocates(t *testing.T) {
	m := NewManager(0, nil, "")
	src := types.Element{ID: 3, Type: types.Rectangle, X: 10, Y: 10, Width: 5, Height: 5, ZIndex: 3, BorderColor: "#123456"}
	m.Copy([]types.Element{src})

	out := m.Paste(counter(100), counter(50))
	if len(out) != 1 {
		t.Fatalf("expected one pasted element, got %d", len(out))
	}
	got := out[0]
	if got.X != 30 || got.Y != 30 {
		t.Fatalf("expected (30,30), got (%v,%v)", got.X, got.Y)
	}
	if got.ID != 100 || got.ZIndex != 50 {
		t.Fatalf("expected fresh id/zIndex 100/50, got %d/%d", got.ID, got.ZIndex)
	}
	if got.BorderColor != src.BorderColor || got.Width != src.Width {
		t.Fatalf("other fields must be copied verbatim: %+v", got)
	}

	again := m.Paste(counter(200), counter(60))
	if len(again) != 1 || again[0].X != 30 {
		t.Fatalf("paste must be repeatable from the same content, got %+v", again)
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	m := NewManager(20, nil, "")
	calls := 0
	alloc := func() int { calls++; return calls }
	out := m.Paste(alloc, alloc)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
	if calls != 0 {
		t.Fatalf("allocators must not run for an empty clipboard")
	}
}

func TestCopyOverwritesAndIsIndependent(t *testing.T) {
	m := NewManager(20, nil, "")
	first := []types.Element{{ID: 1, Type: types.Circle, Width: 1, Height: 1}, {ID: 2, Type: types.Circle, Width: 1, Height: 1}}
	m.Copy(first)
	m.Copy([]types.Element{{ID: 7, Type: types.Text, X: 1, Width: 1, Height: 1}})
	if m.Len() != 1 {
		t.Fatalf("copy must replace, not append; got %d items", m.Len())
	}

	src := []types.Element{{ID: 9, X: 0, Width: 1, Height: 1, Type: types.Rectangle}}
	m.Copy(src)
	src[0].X = 500
	if out := m.Paste(counter(1), counter(1)); out[0].X != 20 {
		t.Fatalf("clipboard aliases the source slice, got x=%v", out[0].X)
	}
}

func TestSystemClipboardMirror(t *testing.T) {
	sys := &fakeSystem{}
	m := NewManager(20, sys, "session-a")
	m.Copy([]types.Element{{ID: 1, Type: types.Rectangle, X: 5, Y: 6, Width: 10, Height: 10}})
	if sys.writes != 1 || !strings.Contains(sys.text, PayloadFormat) {
		t.Fatalf("expected payload on system clipboard, got %q", sys.text)
	}

	// A second editor with an empty internal clipboard picks it up.
	other := NewManager(20, sys, "session-b")
	out := other.Paste(counter(10), counter(10))
	if len(out) != 1 || out[0].X != 25 || out[0].ID != 10 {
		t.Fatalf("expected element imported from system clipboard, got %+v", out)
	}
}

func TestSystemClipboardFailuresDegrade(t *testing.T) {
	sys := &fakeSystem{writeErr: errors.New("no display")}
	m := NewManager(20, sys, "s")
	m.Copy([]types.Element{{ID: 1, Type: types.Rectangle, Width: 1, Height: 1}})
	if !m.HasContent() {
		t.Fatalf("internal copy must survive a system write failure")
	}

	empty := NewManager(20, &fakeSystem{readErr: errors.New("boom")}, "s")
	if out := empty.Paste(counter(1), counter(1)); len(out) != 0 {
		t.Fatalf("read failure should paste nothing, got %v", out)
	}
}

func TestDecodePayloadRejectsForeignText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain text", "hello"},
		{"other format", `{"format":"other","version":1,"elements":[]}`},
		{"bad version", `{"format":"slate/elements","version":2,"elements":[]}`},
		{"no elements", `{"format":"slate/elements","version":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePayload(tt.text); err == nil {
				t.Fatalf("expected error for %q", tt.text)
			}
		})
	}

	text := `{"format":"slate/elements","version":1,"session":"x","elements":[
		{"id":1,"type":"rectangle","x":1,"y":2,"width":3,"height":4},
		{"id":2,"type":"template","x":0,"y":0,"width":3,"height":4},
		{"id":3,"type":"blob","x":0,"y":0,"width":3,"height":4}
	]}`
	els, err := DecodePayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(els) != 1 || els[0].ID != 1 || els[0].Height != 4 {
		t.Fatalf("expected only the valid rectangle, got %+v", els)
	}
}
