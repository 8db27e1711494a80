package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/lixenwraith/invaders/frame"
)

// ansiTerminal drives the tty directly with ANSI sequences
type ansiTerminal struct {
	backend Backend
	output  *cellWriter
	input   *inputReader
	events  chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSI creates the direct ANSI terminal on stdin/stdout
func NewANSI(mode ColorMode) Terminal {
	return newANSI(newBackend(), mode)
}

func newANSI(b Backend, mode ColorMode) *ansiTerminal {
	return &ansiTerminal{
		backend: b,
		output:  newCellWriter(b, mode),
		events:  make(chan Event, 256),
	}
}

// Init enters raw mode, the alternate screen, and starts reading input
func (t *ansiTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return &InitError{Op: "raw mode", Err: err}
	}

	if err := t.output.raw(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiSGR0, csiClear); err != nil {
		t.backend.Fini()
		return &InitError{Op: "alternate screen", Err: err}
	}

	t.backend.SetResizeHandler(func(w, h int) {
		// Latest size wins, never block the signal goroutine
		select {
		case t.events <- Event{Type: EventResize, Width: w, Height: h}:
		default:
		}
	})

	t.input = newInputReader(t.backend, t.events)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state, safe to call multiple times
func (t *ansiTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	if t.input != nil {
		t.input.stop()
	}

	// Auto-wrap is re-enabled after leaving the alternate screen so the main buffer gets it
	t.output.raw(csiSGR0, csiCursorShow, csiAltScreenExit, csiAutoWrapOn)

	t.backend.Fini()
}

func (t *ansiTerminal) Size() (int, int) {
	return t.backend.Size()
}

func (t *ansiTerminal) Events() <-chan Event {
	return t.events
}

func (t *ansiTerminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finalized {
		return
	}
	t.output.clear()
}

func (t *ansiTerminal) SetCell(x, y int, c frame.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finalized {
		return
	}
	t.output.put(x, y, c)
}

func (t *ansiTerminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finalized {
		return nil
	}
	return t.output.flush()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
