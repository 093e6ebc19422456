package clipboard

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard is the OS clipboard as plain text.
type SystemClipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type osClipboard struct{}

func (osClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (osClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }

// NewSystemClipboard returns the OS clipboard, or nil when the platform has no
// usable clipboard tool (for example xclip/xsel missing on X11).
func NewSystemClipboard() SystemClipboard {
	if clipboard.Unsupported {
		return nil
	}
	return osClipboard{}
}
