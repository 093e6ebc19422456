// internal/types/element.go
package types

// ElementType names the kind of shape an element draws.
type ElementType string

const (
	Rectangle ElementType = "rectangle"
	Circle    ElementType = "circle"
	Text      ElementType = "text"
	Template  ElementType = "template"
)

// Valid reports whether t is one of the known element types.
func (t ElementType) Valid() bool {
	switch t {
	case Rectangle, Circle, Text, Template:
		return true
	}
	return false
}

// Element is one placed object on the canvas.
// Every field is a value type, so assigning an Element produces an independent copy.
// Keep it that way: snapshots (history, clipboard, gesture state) rely on it.
type Element struct {
	ID     int         `json:"id"`
	Type   ElementType `json:"type"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`

	Rotation float64 `json:"rotation"` // Degrees, conventionally 0-360
	ZIndex   int     `json:"zIndex"`

	BackgroundColor string  `json:"backgroundColor"`
	BorderColor     string  `json:"borderColor"`
	BorderWidth     float64 `json:"borderWidth"`
	BorderStyle     string  `json:"borderStyle"`
	BorderRadius    float64 `json:"borderRadius"`

	// Only meaningful for Text elements.
	Text       string  `json:"text"`
	TextColor  string  `json:"textColor"`
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`

	// Opaque markup, only set for Template elements. Immutable after creation.
	Template string `json:"template,omitempty"`
}

// ElementFields is the canonical field order of an element record.
var ElementFields = []string{
	"id", "type", "x", "y", "width", "height", "rotation", "zIndex",
	"backgroundColor", "borderColor", "borderWidth", "borderStyle", "borderRadius",
	"text", "textColor", "fontSize", "fontFamily", "template",
}

// Clone returns an independent copy of the element.
func (e Element) Clone() Element {
	c := e
	return c
}

// Bounds returns the axis-aligned bounding box, ignoring rotation.
func (e Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Center returns the centre of the bounding box.
func (e Element) Center() Point {
	return e.Bounds().Center()
}

// Contains reports whether p lies inside the element's bounding box (edges inclusive).
func (e Element) Contains(p Point) bool {
	return e.Bounds().Contains(p)
}

// CloneElements deep-copies a slice of elements. A nil input yields nil.
func CloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	for i, el := range elements {
		out[i] = el.Clone()
	}
	return out
}

// TemplateData is the payload needed to create a template element.
type TemplateData struct {
	Width  float64
	Height float64
	Markup string
}
