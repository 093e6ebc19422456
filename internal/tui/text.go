package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws str from (x, y) up to but not including column maxX, one
// grapheme cluster per cell run. It returns the column after the last cluster.
func DrawText(s tcell.Screen, x, y, maxX int, str string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width <= 0 {
			continue
		}
		if x+width > maxX {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += width
	}
	return x
}

// TextWidth is the display width of str in cells.
func TextWidth(str string) int {
	return uniseg.StringWidth(str)
}

// Fill paints the inclusive cell rectangle with r.
func Fill(s tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}
