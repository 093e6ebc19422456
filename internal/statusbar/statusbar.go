// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// Info is the editor state shown when no message is active.
type Info struct {
	Mode         string
	Elements     int
	Selected     []types.Element
	Interaction  string // "" or "idle" when no gesture runs
	Snap         bool
	HistoryIndex int
	HistoryLen   int
	Pointer      types.Point
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	info Info

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetInfo replaces the displayed editor state.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, or "" once it expired.
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.activeMessage()
}

// activeMessage expects sb.mu to be held.
func (sb *StatusBar) activeMessage() string {
	if sb.tempMessageTime.IsZero() {
		return ""
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return ""
	}
	return sb.tempMessage
}

// selectionText describes the selection.
func selectionText(sel []types.Element, total int) string {
	switch len(sel) {
	case 0:
		return fmt.Sprintf("%d element(s)", total)
	case 1:
		el := sel[0]
		text := fmt.Sprintf("%s #%d  %.0f×%.0f @ %.0f,%.0f", el.Type, el.ID, el.Width, el.Height, el.X, el.Y)
		if el.Rotation != 0 {
			text += fmt.Sprintf("  %.0f°", el.Rotation)
		}
		return text
	default:
		return fmt.Sprintf("%d of %d selected", len(sel), total)
	}
}

// rightText is the right-aligned part: gesture, snapping, history position, pointer.
func (info Info) rightText() string {
	parts := make([]string, 0, 4)
	if info.Interaction != "" && info.Interaction != "idle" {
		parts = append(parts, strings.ToUpper(info.Interaction))
	}
	if info.Snap {
		parts = append(parts, "snap")
	}
	if info.HistoryLen > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", info.HistoryIndex+1, info.HistoryLen))
	}
	parts = append(parts, fmt.Sprintf("%.0f,%.0f", info.Pointer.X, info.Pointer.Y))
	return strings.Join(parts, " │ ")
}

// Draw renders the status bar onto the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	msg := sb.activeMessage()
	info := sb.info
	sb.mu.Unlock()

	barStyle := th.GetStyle(theme.StyleStatusBar)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, barStyle)
	}

	x := 0
	if info.Mode != "" {
		x = drawString(screen, x, y, width, " "+info.Mode+" ", th.GetStyle(theme.StyleStatusBarMode))
		x = drawString(screen, x, y, width, " ", barStyle)
	}

	if msg != "" {
		drawString(screen, x, y, width, msg, th.GetStyle(theme.StyleStatusBarMessage))
		return
	}

	right := info.rightText() + " "
	rightX := width - uniseg.StringWidth(right)
	limit := width
	if rightX > x {
		limit = rightX - 1
		drawString(screen, rightX, y, width, right, th.GetStyle(theme.StyleStatusBarFlag))
	}
	drawString(screen, x, y, limit, selectionText(info.Selected, info.Elements), barStyle)
}

// drawString draws text from x up to maxX using grapheme widths and returns
// the next free column.
func drawString(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}
