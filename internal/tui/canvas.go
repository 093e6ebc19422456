package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/slate/internal/core/guides"
	"github.com/bethropolis/slate/internal/core/interaction"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Scene is everything DrawCanvas paints for one frame.
type Scene struct {
	Elements        []types.Element // paint order, lowest zIndex first
	Selected        types.IDSet
	Guides          guides.Guides
	SelectionBox    *types.Rect
	HandleTolerance float64
	ShowHandles     bool // false while a gesture is running

	// Summary returns the display lines of template markup.
	Summary func(markup string) []string
}

type boxRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	boxSolid   = boxRunes{'─', '│', '┌', '┐', '└', '┘'}
	boxRounded = boxRunes{'─', '│', '╭', '╮', '╰', '╯'}
	boxDashed  = boxRunes{'┄', '┆', '┌', '┐', '└', '┘'}
	boxDotted  = boxRunes{'┈', '┊', '┌', '┐', '└', '┘'}
	boxDouble  = boxRunes{'═', '║', '╔', '╗', '╚', '╝'}
)

func borderRunes(el types.Element) (boxRunes, bool) {
	if el.BorderWidth <= 0 {
		return boxRunes{}, false
	}
	var b boxRunes
	switch el.BorderStyle {
	case "none", "hidden":
		return boxRunes{}, false
	case "dashed":
		b = boxDashed
	case "dotted":
		b = boxDotted
	case "double":
		b = boxDouble
	default:
		b = boxSolid
	}
	if el.Type == types.Circle || el.BorderRadius > 0 {
		b.tl, b.tr, b.bl, b.br = boxRounded.tl, boxRounded.tr, boxRounded.bl, boxRounded.br
	}
	return b, true
}

// elementColor parses an element colour. Transparent and unparsable values
// report false so the caller keeps what is underneath.
func elementColor(s string) (tcell.Color, bool) {
	c, err := theme.ParseColor(s)
	if err != nil || c == tcell.ColorReset || c == tcell.ColorDefault {
		return tcell.ColorDefault, false
	}
	return c, true
}

// canvas clips drawing to the w×h cell area at the top of the screen.
type canvas struct {
	s    tcell.Screen
	w, h int
}

func (c canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.s.SetContent(x, y, r, nil, style)
}

// DrawCanvas paints the scene into the top w×h cells of s.
func DrawCanvas(s tcell.Screen, w, h int, view *Viewport, scene Scene, th *theme.Theme) {
	if w <= 0 || h <= 0 {
		return
	}
	c := canvas{s: s, w: w, h: h}
	canvasStyle := th.GetStyle(theme.StyleCanvas)
	Fill(s, 0, 0, w-1, h-1, ' ', canvasStyle)

	for _, el := range scene.Elements {
		drawElement(c, view, el, scene, th)
	}

	guideStyle := th.GetStyle(theme.StyleGuide)
	for _, g := range scene.Guides.Vertical {
		x, _ := view.ToCell(types.Point{X: g.Position, Y: view.Y})
		for y := 0; y < h; y++ {
			c.set(x, y, '┊', guideStyle)
		}
	}
	for _, g := range scene.Guides.Horizontal {
		_, y := view.ToCell(types.Point{X: view.X, Y: g.Position})
		for x := 0; x < w; x++ {
			c.set(x, y, '┈', guideStyle)
		}
	}

	if scene.SelectionBox != nil {
		x0, y0, x1, y1 := view.CellRect(*scene.SelectionBox)
		drawBox(c, x0, y0, x1, y1, boxDotted, th.GetStyle(theme.StyleSelectionBox))
	}

	if scene.ShowHandles && len(scene.Selected) == 1 {
		for _, el := range scene.Elements {
			if scene.Selected.Has(el.ID) {
				drawHandles(c, view, el, scene.HandleTolerance, th.GetStyle(theme.StyleHandle))
			}
		}
	}
}

func drawElement(c canvas, view *Viewport, el types.Element, scene Scene, th *theme.Theme) {
	x0, y0, x1, y1 := view.CellRect(el.Bounds())
	if x1 < 0 || y1 < 0 || x0 >= c.w || y0 >= c.h {
		return
	}
	selected := scene.Selected.Has(el.ID)

	base := th.GetStyle(theme.StyleElement)
	if bg, ok := elementColor(el.BackgroundColor); ok {
		base = base.Background(bg)
	} else {
		_, canvasBg, _ := th.GetStyle(theme.StyleCanvas).Decompose()
		base = base.Background(canvasBg)
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, ' ', base)
		}
	}

	borderStyle := base
	if fg, ok := elementColor(el.BorderColor); ok {
		borderStyle = borderStyle.Foreground(fg)
	}
	if selected {
		fg, _, attrs := th.GetStyle(theme.StyleElementSelected).Decompose()
		borderStyle = borderStyle.Foreground(fg).Attributes(attrs)
	}
	inset := 0
	if b, ok := borderRunes(el); ok {
		drawBox(c, x0, y0, x1, y1, b, borderStyle)
		inset = 1
	} else if selected {
		drawBox(c, x0, y0, x1, y1, boxDotted, borderStyle)
		inset = 1
	}
	if el.Rotation != 0 && x1-x0 > 4 {
		label := fmt.Sprintf("%.0f°", el.Rotation)
		c.drawText(x0+1, y0, x1, label, borderStyle)
	}

	textFg, _, _ := th.GetStyle(theme.StyleElementText).Decompose()
	textStyle := base.Foreground(textFg)
	if fg, ok := elementColor(el.TextColor); ok {
		textStyle = base.Foreground(fg)
	}
	var lines []string
	switch el.Type {
	case types.Text:
		lines = []string{el.Text}
	case types.Template:
		if el.Template != "" && scene.Summary != nil {
			lines = scene.Summary(el.Template)
		}
	}
	for i, line := range lines {
		y := y0 + inset + i
		if y > y1-inset {
			break
		}
		c.drawText(x0+inset, y, x1+1-inset, line, textStyle)
	}
}

func (c canvas) drawText(x, y, maxX int, str string, style tcell.Style) {
	if y < 0 || y >= c.h {
		return
	}
	if maxX > c.w {
		maxX = c.w
	}
	for x < 0 && str != "" {
		// Clip the left edge a rune at a time.
		_, size := utf8.DecodeRuneInString(str)
		str = str[size:]
		x++
	}
	DrawText(c.s, x, y, maxX, str, style)
}

func drawBox(c canvas, x0, y0, x1, y1 int, b boxRunes, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, b.h, style)
		c.set(x, y1, b.h, style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, b.v, style)
		c.set(x1, y, b.v, style)
	}
	c.set(x0, y0, b.tl, style)
	c.set(x1, y0, b.tr, style)
	c.set(x0, y1, b.bl, style)
	c.set(x1, y1, b.br, style)
}

func drawHandles(c canvas, view *Viewport, el types.Element, tolerance float64, style tcell.Style) {
	for _, p := range interaction.HandlePoints(el) {
		x, y := view.ToCell(p)
		c.set(x, y, '■', style)
	}
	x, y := view.ToCell(interaction.RotatePoint(el, tolerance))
	c.set(x, y, '↻', style)
}
