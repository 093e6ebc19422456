// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the host draws with.
const (
	StyleDefault          = "Default"
	StyleCanvas           = "Canvas"
	StyleElement          = "Element"
	StyleElementSelected  = "Element.selected"
	StyleElementText      = "Element.text"
	StyleHandle           = "Handle"
	StyleGuide            = "Guide"
	StyleSelectionBox     = "SelectionBox"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarMode    = "StatusBarMode"
	StyleStatusBarFlag    = "StatusBarFlag"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks a style up by exact name, then by base name (part before the
// first dot), then falls back to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in themes ---

var (
	SlateDark  Theme
	SlateLight Theme
)

func init() {
	// Slate Dark palette
	bg := tcell.NewHexColor(0x1e2228)
	panel := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	accent := tcell.NewHexColor(0x61afef)
	guide := tcell.NewHexColor(0xc678dd)
	yellow := tcell.NewHexColor(0xe5c07b)

	base := tcell.StyleDefault.Background(bg).Foreground(fg)
	SlateDark = Theme{
		Name:   "Slate Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleCanvas:           base.Foreground(muted),
			StyleElement:          base.Foreground(fg),
			StyleElementSelected:  base.Foreground(accent).Bold(true),
			StyleElementText:      base.Foreground(fg),
			StyleHandle:           base.Foreground(yellow).Bold(true),
			StyleGuide:            base.Foreground(guide),
			StyleSelectionBox:     base.Foreground(accent),
			StyleStatusBar:        tcell.StyleDefault.Background(panel).Foreground(fg),
			StyleStatusBarMessage: tcell.StyleDefault.Background(panel).Foreground(fg).Bold(true),
			StyleStatusBarMode:    tcell.StyleDefault.Background(accent).Foreground(bg).Bold(true),
			StyleStatusBarFlag:    tcell.StyleDefault.Background(panel).Foreground(yellow),
		},
	}

	// Slate Light palette
	lbg := tcell.NewHexColor(0xfafafa)
	lpanel := tcell.NewHexColor(0xe5e5e6)
	lfg := tcell.NewHexColor(0x383a42)
	lmuted := tcell.NewHexColor(0xa0a1a7)
	laccent := tcell.NewHexColor(0x4078f2)
	lguide := tcell.NewHexColor(0xa626a4)

	lbase := tcell.StyleDefault.Background(lbg).Foreground(lfg)
	SlateLight = Theme{
		Name: "Slate Light",
		Styles: map[string]tcell.Style{
			StyleDefault:          lbase,
			StyleCanvas:           lbase.Foreground(lmuted),
			StyleElement:          lbase,
			StyleElementSelected:  lbase.Foreground(laccent).Bold(true),
			StyleHandle:           lbase.Foreground(laccent).Reverse(true),
			StyleGuide:            lbase.Foreground(lguide),
			StyleSelectionBox:     lbase.Foreground(laccent),
			StyleStatusBar:        tcell.StyleDefault.Background(lpanel).Foreground(lfg),
			StyleStatusBarMessage: tcell.StyleDefault.Background(lpanel).Foreground(lfg).Bold(true),
			StyleStatusBarMode:    tcell.StyleDefault.Background(laccent).Foreground(lbg).Bold(true),
		},
	}
}
