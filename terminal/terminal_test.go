package terminal

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/frame"
)

type fakeBackend struct {
	mu       sync.Mutex
	out      bytes.Buffer
	initErr  error
	writeErr error
	inits    int
	finis    int
	reads    chan []byte
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{reads: make(chan []byte, 8)}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finis++
}

func (b *fakeBackend) Size() (int, int) { return frame.Width, frame.Height }

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stop <-chan struct{}) ([]byte, error) {
	select {
	case p := <-b.reads:
		return p, nil
	case <-stop:
		return nil, nil
	case <-time.After(5 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBackend) SetResizeHandler(func(int, int)) {}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

// TestANSIInitFiniSequence verifies session enter and restore sequences
func TestANSIInitFiniSequence(t *testing.T) {
	b := newFakeBackend()
	term := newANSI(b, ColorMode256)

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	out := b.output()
	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff} {
		if !strings.Contains(out, string(seq)) {
			t.Errorf("Expected init output to contain %q", seq)
		}
	}

	term.Fini()
	term.Fini()

	out = b.output()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiAutoWrapOn} {
		if !strings.Contains(out, string(seq)) {
			t.Errorf("Expected fini output to contain %q", seq)
		}
	}
	if b.finis != 1 {
		t.Errorf("Expected backend restored exactly once, got %d", b.finis)
	}
}

// TestANSIInitErrorRawMode verifies raw-mode failure surfaces as InitError
func TestANSIInitErrorRawMode(t *testing.T) {
	b := newFakeBackend()
	b.initErr = ErrNotTerminal
	term := newANSI(b, ColorMode256)

	err := term.Init()
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected *InitError, got %v", err)
	}
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected wrapped ErrNotTerminal, got %v", err)
	}

	// Fini after failed Init must not touch the backend
	term.Fini()
	if b.finis != 0 {
		t.Errorf("Expected no restore after failed init, got %d", b.finis)
	}
}

// TestANSIInitErrorAltScreen verifies write failure restores raw mode and reports InitError
func TestANSIInitErrorAltScreen(t *testing.T) {
	b := newFakeBackend()
	b.writeErr = errors.New("broken pipe")
	term := newANSI(b, ColorMode256)

	err := term.Init()
	var ie *InitError
	if !errors.As(err, &ie) || ie.Op != "alternate screen" {
		t.Fatalf("Expected alternate screen InitError, got %v", err)
	}
	if b.finis != 1 {
		t.Errorf("Expected raw mode to be restored, got %d restores", b.finis)
	}
}

// TestANSIInputEvents verifies bytes from the backend arrive as events
func TestANSIInputEvents(t *testing.T) {
	b := newFakeBackend()
	term := newANSI(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	b.reads <- []byte("\x1b[Dq")

	want := []Event{KeyEvent(KeyLeft, 0), KeyEvent(KeyRune, 'q')}
	for i, w := range want {
		select {
		case ev := <-term.Events():
			if ev != w {
				t.Errorf("Event %d: expected %+v, got %+v", i, w, ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("Timed out waiting for event %d", i)
		}
	}
}

// TestANSILoneEscape verifies a lone ESC is emitted after the poll timeout
func TestANSILoneEscape(t *testing.T) {
	b := newFakeBackend()
	term := newANSI(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	b.reads <- []byte{0x1b}

	select {
	case ev := <-term.Events():
		if ev.Key != KeyEscape {
			t.Errorf("Expected Escape, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for Escape")
	}
}

// TestCellWriterPositionsAndCoalesces verifies cursor moves and style emission
func TestCellWriterPositionsAndCoalesces(t *testing.T) {
	var buf bytes.Buffer
	w := newCellWriter(&buf, ColorMode256)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	w.put(3, 2, frame.Cell{Rune: 'a', Style: green})
	w.put(4, 2, frame.Cell{Rune: 'b', Style: green})
	w.put(0, 5, frame.Cell{Rune: 'c', Style: green})
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	out := buf.String()
	want := "\x1b[3;4H\x1b[0;38;5;2;49mab\x1b[6;1Hc\x1b[0m"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

// TestCellWriterTrueColor verifies RGB colors in truecolor and 256 modes
func TestCellWriterTrueColor(t *testing.T) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Bold(true)

	var tc bytes.Buffer
	w := newCellWriter(&tc, ColorModeTrueColor)
	w.put(0, 0, frame.Cell{Rune: 'x', Style: style})
	w.flush()
	if !strings.Contains(tc.String(), "\x1b[0;1;38;2;255;0;0;49m") {
		t.Errorf("Expected truecolor SGR, got %q", tc.String())
	}

	var p bytes.Buffer
	w = newCellWriter(&p, ColorMode256)
	w.put(0, 0, frame.Cell{Rune: 'x', Style: style})
	w.flush()
	if !strings.Contains(p.String(), ";38;5;") || strings.Contains(p.String(), ";38;2;") {
		t.Errorf("Expected palette SGR, got %q", p.String())
	}
}

// TestTcellTerminal verifies the tcell backend with a simulation screen
func TestTcellTerminal(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTcell(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()
	sim.SetSize(frame.Width, frame.Height)

	term.SetCell(2, 1, frame.Cell{Rune: 'A', Style: tcell.StyleDefault})
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if r, _, _, _ := sim.GetContent(2, 1); r != 'A' {
		t.Errorf("Expected 'A' on screen, got %q", r)
	}

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got []Event
	deadline := time.After(time.Second)
	for len(got) < 2 {
		select {
		case ev := <-term.Events():
			if ev.Type == EventKey {
				got = append(got, ev)
			}
		case <-deadline:
			t.Fatalf("Timed out, got %+v", got)
		}
	}
	if got[0].Key != KeyRight || got[1].Key != KeyRune || got[1].Rune != 'q' {
		t.Errorf("Unexpected events %+v", got)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("tcell"); err != nil || k != KindTcell {
		t.Errorf("Expected tcell, got %v %v", k, err)
	}
	if k, err := ParseKind(""); err != nil || k != KindANSI {
		t.Errorf("Expected ansi default, got %v %v", k, err)
	}
	if _, err := ParseKind("curses"); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
