// Package elements owns the canvas document: the element collection and the
// id / z-order allocators.
package elements

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// ErrInvalidArgument reports a caller defect while constructing an element.
var ErrInvalidArgument = errors.New("invalid argument")

// Defaults applied to every new element.
const (
	DefaultWidth        = 100
	DefaultHeight       = 100
	DefaultBackground   = "#EEEEEE"
	TextBackground      = "transparent"
	DefaultBorderColor  = "#000000"
	DefaultBorderWidth  = 1
	DefaultBorderStyle  = "solid"
	DefaultTextColor    = "#000000"
	DefaultFontSize     = 16
	DefaultFontFamily   = "Arial"
	DefaultTextContents = "Novo texto"
)

// Manager is the single mutable source of truth for the document.
// Elements are kept in insertion (document) order; paint order is derived from ZIndex.
type Manager struct {
	elements   []types.Element
	nextID     int
	nextZIndex int
	events     *event.Manager
}

// NewManager creates an empty store with both allocators at 1.
func NewManager() *Manager {
	return &Manager{nextID: 1, nextZIndex: 1}
}

// SetEventManager attaches the bus used for ElementsRemoved/DocumentReplaced notifications.
func (m *Manager) SetEventManager(em *event.Manager) {
	m.events = em
}

// NextID allocates a fresh element id. Ids are never reused.
func (m *Manager) NextID() int {
	id := m.nextID
	m.nextID++
	return id
}

// NextZIndex allocates a fresh paint-order key.
func (m *Manager) NextZIndex() int {
	z := m.nextZIndex
	m.nextZIndex++
	return z
}

// CreateElement builds a new element with default styling without adding it to the document.
// tpl is required for types.Template and ignored otherwise.
func (m *Manager) CreateElement(t types.ElementType, x, y float64, tpl *types.TemplateData) (types.Element, error) {
	if !t.Valid() {
		return types.Element{}, fmt.Errorf("create element: unknown type %q: %w", t, ErrInvalidArgument)
	}
	if t == types.Template {
		if tpl == nil {
			return types.Element{}, fmt.Errorf("create element: template type requires a template payload: %w", ErrInvalidArgument)
		}
		if tpl.Width <= 0 || tpl.Height <= 0 {
			return types.Element{}, fmt.Errorf("create element: template size %gx%g must be positive: %w", tpl.Width, tpl.Height, ErrInvalidArgument)
		}
		if tpl.Markup == "" {
			return types.Element{}, fmt.Errorf("create element: template markup is empty: %w", ErrInvalidArgument)
		}
	}

	el := types.Element{
		ID:              m.NextID(),
		Type:            t,
		X:               x,
		Y:               y,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		ZIndex:          m.NextZIndex(),
		BackgroundColor: DefaultBackground,
		BorderColor:     DefaultBorderColor,
		BorderWidth:     DefaultBorderWidth,
		BorderStyle:     DefaultBorderStyle,
		TextColor:       DefaultTextColor,
		FontSize:        DefaultFontSize,
		FontFamily:      DefaultFontFamily,
	}
	switch t {
	case types.Text:
		el.BackgroundColor = TextBackground
		el.Text = DefaultTextContents
	case types.Template:
		el.Width = tpl.Width
		el.Height = tpl.Height
		el.Template = tpl.Markup
	}
	return el, nil
}

// AddElement creates an element and appends it to the document.
func (m *Manager) AddElement(t types.ElementType, x, y float64, tpl *types.TemplateData) (types.Element, error) {
	el, err := m.CreateElement(t, x, y, tpl)
	if err != nil {
		return types.Element{}, err
	}
	m.Append(el)
	return el, nil
}

// Append inserts already-built elements (pasted or duplicated ones) at the end of the document.
// The allocators are advanced past any id or zIndex they carry.
func (m *Manager) Append(els ...types.Element) {
	if len(els) == 0 {
		return
	}
	for _, el := range els {
		m.elements = append(m.elements, el)
		m.bumpAllocators(el)
	}
	logger.DebugTagf("store", "appended %d element(s), total %d", len(els), len(m.elements))
	m.events.Dispatch(event.TypeElementsAdded, event.ElementsAddedData{Elements: types.CloneElements(els)})
}

// RemoveElements drops every element whose id is in ids. Unknown ids are ignored.
func (m *Manager) RemoveElements(ids types.IDSet) {
	if len(ids) == 0 {
		return
	}
	kept := m.elements[:0:0]
	var removed []int
	for _, el := range m.elements {
		if ids.Has(el.ID) {
			removed = append(removed, el.ID)
			continue
		}
		kept = append(kept, el)
	}
	if len(removed) == 0 {
		return
	}
	m.elements = kept
	logger.DebugTagf("store", "removed %v, total %d", removed, len(m.elements))
	m.events.Dispatch(event.TypeElementsRemoved, event.ElementsRemovedData{IDs: removed})
}

// UpdateElement replaces the element with the same id wholesale.
// It returns false when no such element exists. The template payload cannot change.
func (m *Manager) UpdateElement(el types.Element) bool {
	i := m.indexOf(el.ID)
	if i < 0 {
		return false
	}
	before := m.elements[i]
	el.Template = before.Template
	if before.Type == types.Template {
		el.Type = types.Template
	}
	m.elements[i] = el
	m.events.Dispatch(event.TypeElementUpdated, event.ElementUpdatedData{Before: before, After: el})
	return true
}

// ElementAtPosition returns the topmost element whose bounding box contains (x, y).
// Topmost means highest zIndex; among equal zIndex the later element in document
// order wins, matching paint order. Rotation is not considered.
func (m *Manager) ElementAtPosition(x, y float64) (types.Element, bool) {
	p := types.Point{X: x, Y: y}
	best := -1
	for i, el := range m.elements {
		if !el.Contains(p) {
			continue
		}
		if best < 0 || el.ZIndex >= m.elements[best].ZIndex {
			best = i
		}
	}
	if best < 0 {
		return types.Element{}, false
	}
	return m.elements[best], true
}

// ElementsInRect returns the ids of elements whose bounding box intersects r, in document order.
func (m *Manager) ElementsInRect(r types.Rect) []int {
	var ids []int
	for _, el := range m.elements {
		if el.Bounds().Intersects(r) {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

// Elements returns a copy of the document in paint order (ascending zIndex, stable).
func (m *Manager) Elements() []types.Element {
	out := types.CloneElements(m.elements)
	if out == nil {
		out = []types.Element{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Snapshot returns a deep copy of the document in document order, for history.
func (m *Manager) Snapshot() []types.Element {
	out := types.CloneElements(m.elements)
	if out == nil {
		out = []types.Element{}
	}
	return out
}

// Replace swaps the whole document, as undo/redo do. Allocators never move backwards.
func (m *Manager) Replace(els []types.Element) {
	m.elements = types.CloneElements(els)
	for _, el := range m.elements {
		m.bumpAllocators(el)
	}
	logger.DebugTagf("store", "document replaced, %d element(s)", len(m.elements))
	m.events.Dispatch(event.TypeDocumentReplaced, event.DocumentReplacedData{Count: len(m.elements)})
}

// Get returns a copy of the element with the given id.
func (m *Manager) Get(id int) (types.Element, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.elements[i], true
	}
	return types.Element{}, false
}

// Has reports whether id is present in the document.
func (m *Manager) Has(id int) bool {
	return m.indexOf(id) >= 0
}

// IDs returns every id in document order.
func (m *Manager) IDs() []int {
	ids := make([]int, len(m.elements))
	for i, el := range m.elements {
		ids[i] = el.ID
	}
	return ids
}

func (m *Manager) Len() int { return len(m.elements) }

func (m *Manager) indexOf(id int) int {
	for i, el := range m.elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) bumpAllocators(el types.Element) {
	if el.ID >= m.nextID {
		m.nextID = el.ID + 1
	}
	if el.ZIndex >= m.nextZIndex {
		m.nextZIndex = el.ZIndex + 1
	}
}
