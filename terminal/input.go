package terminal

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
	"unicode/utf8"
)

// escapeTimeout is how long a lone ESC waits before it is taken as the Escape key
const escapeTimeout = 50 * time.Millisecond

var errInputEOF = errors.New("input closed")

// inputReader turns the raw byte stream from a Backend into key events
type inputReader struct {
	backend Backend
	eventCh chan<- Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once

	// Holds a partial escape or UTF-8 sequence across reads
	buf []byte
}

func newInputReader(backend Backend, eventCh chan<- Event) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: eventCh,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 64),
	}
}

func (r *inputReader) start() {
	go r.readLoop()
}

// stop signals the reader and waits briefly for it to exit
func (r *inputReader) stop() {
	r.once.Do(func() { close(r.stopCh) })
	select {
	case <-r.doneCh:
	case <-time.After(2 * escapeTimeout):
	}
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if p := recover(); p != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", p)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(3)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			if errors.Is(err, errInputEOF) {
				r.send(Event{Type: EventClosed})
			} else {
				r.send(Event{Type: EventError, Err: err})
			}
			return
		}

		if len(data) == 0 {
			select {
			case <-r.stopCh:
				r.send(Event{Type: EventClosed})
				return
			default:
			}
			// Poll timeout: a lone ESC left in the buffer is the Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(KeyEvent(KeyEscape, 0))
				r.buf = r.buf[:0]
			}
			continue
		}

		r.buf = append(r.buf, data...)
		consumed := parseInput(r.buf, r.send)
		n := copy(r.buf, r.buf[consumed:])
		r.buf = r.buf[:n]
	}
}

// send delivers an event unless the reader is stopping
func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	case <-r.stopCh:
	}
}

// parseInput emits events for every complete key in data and returns bytes consumed
// Incomplete escape or UTF-8 sequences are left for the next read
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	for i < len(data) {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			emit(KeyEvent(KeyRune, rune(b)))
			i++

		case b == 0x1b:
			n, ev := parseEscape(data[i:])
			if n == 0 {
				return i
			}
			if ev.Key != KeyNone {
				emit(ev)
			}
			i += n

		case b < 0x20:
			if k := controlKey(b); k != KeyNone {
				emit(KeyEvent(k, 0))
			}
			i++

		case b == 0x7f:
			emit(KeyEvent(KeyBackspace, 0))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError {
				emit(KeyEvent(KeyRune, rn))
			}
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting at ESC, returns 0 when more bytes are needed
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch data[1] {
	case 0x1b:
		// ESC ESC: first one is a standalone Escape
		return 1, KeyEvent(KeyEscape, 0)
	case '[':
		return parseCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		return 3, KeyEvent(arrowKey(data[2]), 0)
	}

	// Alt+key is not bound to anything, swallow it
	return 2, Event{Type: EventKey, Key: KeyNone}
}

// parseCSI consumes ESC [ params final; arrows keep their key regardless of modifier params
func parseCSI(data []byte) (int, Event) {
	const maxCSI = 16
	for end := 2; end < len(data) && end < maxCSI; end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			return end + 1, KeyEvent(arrowKey(b), 0)
		}
		if b < 0x20 || b > 0x3f {
			// Malformed, drop ESC [ and resync
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	if len(data) >= maxCSI {
		return maxCSI, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}

func controlKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	}
	return KeyNone
}
