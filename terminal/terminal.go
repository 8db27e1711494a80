package terminal

import (
	"fmt"

	"github.com/lixenwraith/invaders/frame"
)

// Terminal is the tty collaborator used by the entry point, the game loop (input)
// and the render worker (output)
// SetCell, Clear and Flush are called from a single goroutine
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor, starts input
	Init() error

	// Fini shows the cursor, leaves the alternate screen, restores the tty mode
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Events delivers key, resize, error and close events
	Events() <-chan Event

	// Clear blanks the whole screen
	Clear()

	// SetCell queues one cell for output at column x, row y
	SetCell(x, y int, c frame.Cell)

	// Flush writes queued output to the terminal
	Flush() error
}

// Kind selects a Terminal implementation
type Kind string

const (
	KindANSI  Kind = "ansi"
	KindTcell Kind = "tcell"
)

// ParseKind validates a backend name
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindANSI, "":
		return KindANSI, nil
	case KindTcell:
		return KindTcell, nil
	}
	return "", fmt.Errorf("unknown terminal backend %q", s)
}

// New creates a Terminal of the selected kind, not yet initialized
func New(k Kind, mode ColorMode) Terminal {
	if k == KindTcell {
		return NewTcell(nil)
	}
	return NewANSI(mode)
}
