package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/frame"
)

// tcellTerminal adapts a tcell.Screen to Terminal
type tcellTerminal struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell wraps screen, or a new terminal-backed tcell screen when screen is nil
func NewTcell(screen tcell.Screen) Terminal {
	return &tcellTerminal{
		screen: screen,
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Op: "open screen", Err: err}
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return &InitError{Op: "raw mode", Err: err}
	}

	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()

	go t.pump()

	t.initialized = true
	return nil
}

// pump translates tcell events until the screen is finalized
func (t *tcellTerminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.send(Event{Type: EventClosed})
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if out, ok := translateKey(e); ok {
				t.send(out)
			}
		case *tcell.EventResize:
			w, h := e.Size()
			t.send(Event{Type: EventResize, Width: w, Height: h})
		case *tcell.EventError:
			t.send(Event{Type: EventError, Err: e})
			return
		}
	}
}

func (t *tcellTerminal) send(ev Event) {
	select {
	case t.events <- ev:
	case <-t.done:
	}
}

func translateKey(e *tcell.EventKey) (Event, bool) {
	switch e.Key() {
	case tcell.KeyRune:
		return KeyEvent(KeyRune, e.Rune()), true
	case tcell.KeyLeft:
		return KeyEvent(KeyLeft, 0), true
	case tcell.KeyRight:
		return KeyEvent(KeyRight, 0), true
	case tcell.KeyUp:
		return KeyEvent(KeyUp, 0), true
	case tcell.KeyDown:
		return KeyEvent(KeyDown, 0), true
	case tcell.KeyEnter:
		return KeyEvent(KeyEnter, 0), true
	case tcell.KeyEscape:
		return KeyEvent(KeyEscape, 0), true
	case tcell.KeyCtrlC:
		return KeyEvent(KeyCtrlC, 0), true
	case tcell.KeyTab:
		return KeyEvent(KeyTab, 0), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent(KeyBackspace, 0), true
	}
	return Event{}, false
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	close(t.done)
	t.screen.Fini()
}

func (t *tcellTerminal) Size() (int, int) {
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *tcellTerminal) Events() <-chan Event {
	return t.events
}

func (t *tcellTerminal) Clear() {
	t.screen.Clear()
}

func (t *tcellTerminal) SetCell(x, y int, c frame.Cell) {
	t.screen.SetContent(x, y, c.Rune, nil, c.Style)
}

// Flush shows the screen; tcell reports no write errors here
func (t *tcellTerminal) Flush() error {
	t.screen.Show()
	return nil
}
