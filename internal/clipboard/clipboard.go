// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility is available (e.g. no xclip,
// xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System is the OS clipboard.
type System struct{}

// Copy writes text to the OS clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last copied text. Useful when no system clipboard exists.
type Memory struct {
	Text  string
	Count int
}

// Copy stores text.
func (m *Memory) Copy(text string) error {
	m.Text = text
	m.Count++
	return nil
}
