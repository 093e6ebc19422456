package history

import (
	"sync"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

const DefaultMaxHistory = 50

// Manager is a bounded undo/redo log of full document snapshots.
// entries[currentIndex] is the state the document is currently in.
type Manager struct {
	entries      [][]types.Element
	currentIndex int
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history whose first entry is initial.
func NewManager(initial []types.Element, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	m := &Manager{maxHistory: maxHistory}
	m.entries = append(make([][]types.Element, 0, maxHistory), clone(initial))
	return m
}

// AddToHistory records state as the newest entry. Entries after the current
// index are discarded first, so no redo branch survives a new edit. When the
// log exceeds its capacity the oldest entries are dropped.
func (m *Manager) AddToHistory(state []types.Element) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.entries)-1 {
		m.entries = m.entries[:m.currentIndex+1]
	}
	m.entries = append(m.entries, clone(state))
	m.currentIndex++

	if len(m.entries) > m.maxHistory {
		dropped := len(m.entries) - m.maxHistory
		m.entries = append([][]types.Element(nil), m.entries[dropped:]...)
		m.currentIndex = len(m.entries) - 1
	}

	logger.DebugTagf("history", "recorded %d element(s). index %d, count %d", len(state), m.currentIndex, len(m.entries))
}

// Undo steps back and returns a copy of the entry now current.
// It returns false at the oldest retained entry.
func (m *Manager) Undo() ([]types.Element, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "nothing to undo")
		return nil, false
	}
	m.currentIndex--
	logger.DebugTagf("history", "undo to index %d", m.currentIndex)
	return clone(m.entries[m.currentIndex]), true
}

// Redo steps forward and returns a copy of the entry now current.
// It returns false at the newest entry.
func (m *Manager) Redo() ([]types.Element, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.entries)-1 {
		logger.DebugTagf("history", "nothing to redo. index=%d, count=%d", m.currentIndex, len(m.entries))
		return nil, false
	}
	m.currentIndex++
	logger.DebugTagf("history", "redo to index %d", m.currentIndex)
	return clone(m.entries[m.currentIndex]), true
}

func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.entries)-1
}

// Len returns the number of retained entries.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.entries)
}

// Index returns the position of the current entry.
func (m *Manager) Index() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex
}

// Current returns a copy of the current entry.
func (m *Manager) Current() []types.Element {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return clone(m.entries[m.currentIndex])
}

// Reset drops every entry and starts over from initial.
func (m *Manager) Reset(initial []types.Element) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries = [][]types.Element{clone(initial)}
	m.currentIndex = 0
	logger.DebugTagf("history", "history reset")
}

// clone deep-copies a snapshot. A nil snapshot is stored as an empty document.
func clone(state []types.Element) []types.Element {
	if state == nil {
		return []types.Element{}
	}
	return types.CloneElements(state)
}
