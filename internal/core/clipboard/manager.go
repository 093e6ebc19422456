package clipboard

import (
	"encoding/json"
	"fmt"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
	"github.com/tidwall/gjson"
)

const (
	// DefaultOffset is how far pasted copies are shifted on both axes.
	DefaultOffset = 20.0

	// PayloadFormat tags clipboard text written by this editor.
	PayloadFormat  = "slate/elements"
	PayloadVersion = 1
)

// Payload is the text form of copied elements on the system clipboard.
type Payload struct {
	Format   string          `json:"format"`
	Version  int             `json:"version"`
	Session  string          `json:"session"`
	Elements []types.Element `json:"elements"`
}

// Allocator hands out fresh ids or zIndex values.
type Allocator func() int

// Manager holds copied elements. Content is replaced wholesale on every copy
// and may be pasted any number of times.
type Manager struct {
	items   []types.Element
	offset  float64
	system  SystemClipboard
	session string
}

// NewManager creates a clipboard. system may be nil to stay in-process only.
func NewManager(offset float64, system SystemClipboard, session string) *Manager {
	if offset == 0 {
		offset = DefaultOffset
	}
	return &Manager{offset: offset, system: system, session: session}
}

// SetSystemClipboard swaps the OS clipboard mirror; nil disables it.
func (m *Manager) SetSystemClipboard(system SystemClipboard) {
	m.system = system
}

// Copy stores a deep copy of elements, replacing any prior content.
func (m *Manager) Copy(elements []types.Element) {
	m.items = types.CloneElements(elements)
	logger.DebugTagf("clipboard", "copied %d element(s)", len(m.items))

	if m.system == nil || len(m.items) == 0 {
		return
	}
	if err := m.writeSystem(); err != nil {
		logger.Warnf("clipboard: system clipboard write failed, keeping internal copy: %v", err)
	}
}

// Paste returns one new element per clipboard entry, with fresh ids and zIndex
// values from the allocators and positions shifted by the paste offset.
// An empty clipboard yields an empty slice.
func (m *Manager) Paste(nextID, nextZIndex Allocator) []types.Element {
	if len(m.items) == 0 && m.system != nil {
		if items, err := m.readSystem(); err != nil {
			logger.DebugTagf("clipboard", "system clipboard not usable: %v", err)
		} else {
			m.items = items
		}
	}
	if len(m.items) == 0 {
		return []types.Element{}
	}
	out := Offset(m.items, m.offset, nextID, nextZIndex)
	logger.DebugTagf("clipboard", "pasted %d element(s)", len(out))
	return out
}

// HasContent reports whether a paste would produce anything from the internal copy.
func (m *Manager) HasContent() bool { return len(m.items) > 0 }

// Len returns the number of copied elements.
func (m *Manager) Len() int { return len(m.items) }

// Clear empties the internal copy.
func (m *Manager) Clear() { m.items = nil }

// Offset copies elements with fresh ids and zIndex values, shifted by offset on
// both axes. Every other field is carried over verbatim. Duplicate uses it too.
func Offset(elements []types.Element, offset float64, nextID, nextZIndex Allocator) []types.Element {
	out := make([]types.Element, 0, len(elements))
	for _, el := range elements {
		c := el.Clone()
		c.ID = nextID()
		c.X += offset
		c.Y += offset
		c.ZIndex = nextZIndex()
		out = append(out, c)
	}
	return out
}

func (m *Manager) writeSystem() error {
	data, err := json.Marshal(Payload{
		Format:   PayloadFormat,
		Version:  PayloadVersion,
		Session:  m.session,
		Elements: m.items,
	})
	if err != nil {
		return fmt.Errorf("encode clipboard payload: %w", err)
	}
	return m.system.WriteAll(string(data))
}

func (m *Manager) readSystem() ([]types.Element, error) {
	text, err := m.system.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read system clipboard: %w", err)
	}
	return DecodePayload(text)
}

// DecodePayload parses clipboard text written by Copy. Text that is not JSON,
// or JSON of another format or version, is rejected before decoding.
func DecodePayload(text string) ([]types.Element, error) {
	if text == "" || !gjson.Valid(text) {
		return nil, fmt.Errorf("clipboard text is not a JSON payload")
	}
	if format := gjson.Get(text, "format").String(); format != PayloadFormat {
		return nil, fmt.Errorf("unexpected clipboard format %q", format)
	}
	if v := gjson.Get(text, "version").Int(); v != PayloadVersion {
		return nil, fmt.Errorf("unsupported clipboard payload version %d", v)
	}
	if !gjson.Get(text, "elements").IsArray() {
		return nil, fmt.Errorf("clipboard payload has no element list")
	}

	var p Payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("decode clipboard payload: %w", err)
	}
	var valid []types.Element
	for _, el := range p.Elements {
		if !el.Type.Valid() || el.Width <= 0 || el.Height <= 0 {
			continue
		}
		if el.Type == types.Template && el.Template == "" {
			continue
		}
		valid = append(valid, el)
	}
	logger.DebugTagf("clipboard", "decoded %d element(s) from session %s", len(valid), gjson.Get(text, "session").String())
	return valid, nil
}
