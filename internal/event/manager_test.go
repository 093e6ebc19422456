package event

import "testing"

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeSelectionChanged, func(e Event) bool {
		calls = append(calls, "first")
		data := e.Data.(SelectionChangedData)
		return len(data.IDs) == 0 // consume empty selections
	})
	m.Subscribe(TypeSelectionChanged, func(e Event) bool {
		calls = append(calls, "second")
		return false
	})

	m.Dispatch(TypeSelectionChanged, SelectionChangedData{IDs: []int{1}})
	if len(calls) != 2 {
		t.Fatalf("expected both handlers, got %v", calls)
	}

	calls = nil
	m.Dispatch(TypeSelectionChanged, SelectionChangedData{})
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("expected consumption after first handler, got %v", calls)
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	m := NewManager()
	m.Dispatch(TypeAppReady, AppReadyData{}) // must not panic

	var nilManager *Manager
	nilManager.Dispatch(TypeAppQuit, AppQuitData{})
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		m.Subscribe(TypeHistoryChanged, func(Event) bool { late++; return false })
		return false
	})

	m.Dispatch(TypeHistoryChanged, HistoryChangedData{})
	if late != 0 {
		t.Fatalf("handler added mid-dispatch ran in the same dispatch")
	}
}

func TestTypeString(t *testing.T) {
	if TypeDocumentReplaced.String() != "DocumentReplaced" {
		t.Fatalf("unexpected name %q", TypeDocumentReplaced.String())
	}
	if Type(999).String() != "Unknown" {
		t.Fatalf("unknown types should stringify as Unknown")
	}
}
