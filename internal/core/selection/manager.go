package selection

import (
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// StoreInterface is what the selection needs from the element store.
type StoreInterface interface {
	Has(id int) bool
	Get(id int) (types.Element, bool)
	IDs() []int
}

// Manager owns the set of selected element ids.
// The set is always a subset of the ids present in the store: unknown ids are
// ignored on insert and removed ones are pruned through the event handlers.
type Manager struct {
	store    StoreInterface
	selected types.IDSet
	events   *event.Manager
}

// NewManager creates an empty selection over store.
func NewManager(store StoreInterface) *Manager {
	return &Manager{
		store:    store,
		selected: make(types.IDSet),
	}
}

// SetEventManager attaches the bus used to announce selection changes.
func (m *Manager) SetEventManager(em *event.Manager) {
	m.events = em
}

// SelectElement toggles id when a multi-select modifier is held, otherwise
// replaces the selection with {id}.
func (m *Manager) SelectElement(id int, mods types.Modifiers) {
	if !m.store.Has(id) {
		logger.DebugTagf("selection", "ignoring select of unknown id %d", id)
		return
	}
	before := m.selected.Clone()
	if mods.Multi() {
		if m.selected.Has(id) {
			m.selected.Remove(id)
		} else {
			m.selected.Add(id)
		}
	} else {
		m.selected = types.NewIDSet(id)
	}
	m.changed(before)
}

// ClearSelection empties the set.
func (m *Manager) ClearSelection() {
	if len(m.selected) == 0 {
		return
	}
	before := m.selected
	m.selected = make(types.IDSet)
	m.changed(before)
}

// AddToSelection inserts id. Idempotent.
func (m *Manager) AddToSelection(id int) {
	if !m.store.Has(id) || m.selected.Has(id) {
		return
	}
	before := m.selected.Clone()
	m.selected.Add(id)
	m.changed(before)
}

// RemoveFromSelection removes id. Idempotent.
func (m *Manager) RemoveFromSelection(id int) {
	if !m.selected.Has(id) {
		return
	}
	before := m.selected.Clone()
	m.selected.Remove(id)
	m.changed(before)
}

// UpdateSelectionFromBox applies a rubber-band result. Without a multi-select
// modifier the previous selection is dropped first; ids are then always added.
func (m *Manager) UpdateSelectionFromBox(ids []int, mods types.Modifiers) {
	before := m.selected.Clone()
	if !mods.Multi() {
		m.selected = make(types.IDSet)
	}
	for _, id := range ids {
		if m.store.Has(id) {
			m.selected.Add(id)
		}
	}
	m.changed(before)
}

// SelectAll selects every element in the store.
func (m *Manager) SelectAll() {
	before := m.selected.Clone()
	m.selected = types.NewIDSet(m.store.IDs()...)
	m.changed(before)
}

// Retain keeps only the given ids, used after bulk document changes.
func (m *Manager) Retain(ids types.IDSet) {
	before := m.selected.Clone()
	for id := range m.selected {
		if !ids.Has(id) {
			m.selected.Remove(id)
		}
	}
	m.changed(before)
}

// Prune drops ids that no longer exist in the store.
func (m *Manager) Prune() {
	before := m.selected.Clone()
	for id := range m.selected {
		if !m.store.Has(id) {
			m.selected.Remove(id)
		}
	}
	m.changed(before)
}

// HandleElementsRemoved prunes ids reported by an ElementsRemoved event.
func (m *Manager) HandleElementsRemoved(e event.Event) bool {
	data, ok := e.Data.(event.ElementsRemovedData)
	if !ok {
		return false
	}
	before := m.selected.Clone()
	for _, id := range data.IDs {
		m.selected.Remove(id)
	}
	m.changed(before)
	return false
}

// HandleDocumentReplaced prunes ids that did not survive an undo/redo/clear.
func (m *Manager) HandleDocumentReplaced(e event.Event) bool {
	m.Prune()
	return false
}

// IDs returns the selected ids in ascending order.
func (m *Manager) IDs() []int {
	return m.selected.Sorted()
}

// Set returns a copy of the selected id set.
func (m *Manager) Set() types.IDSet {
	return m.selected.Clone()
}

func (m *Manager) Contains(id int) bool { return m.selected.Has(id) }
func (m *Manager) Count() int           { return len(m.selected) }

func (m *Manager) HasSelection() bool         { return len(m.selected) > 0 }
func (m *Manager) HasMultipleSelection() bool { return len(m.selected) > 1 }

// SelectedElement returns the element only when exactly one is selected.
func (m *Manager) SelectedElement() (types.Element, bool) {
	if len(m.selected) != 1 {
		return types.Element{}, false
	}
	for id := range m.selected {
		return m.store.Get(id)
	}
	return types.Element{}, false
}

// SelectedElements returns copies of the selected elements in ascending id order.
func (m *Manager) SelectedElements() []types.Element {
	out := make([]types.Element, 0, len(m.selected))
	for _, id := range m.selected.Sorted() {
		if el, ok := m.store.Get(id); ok {
			out = append(out, el)
		}
	}
	return out
}

func (m *Manager) changed(before types.IDSet) {
	if before.Equal(m.selected) {
		return
	}
	ids := m.selected.Sorted()
	logger.DebugTagf("selection", "selection now %v", ids)
	m.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{IDs: ids})
}
