package render

import (
	"errors"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/frame"
	"github.com/lixenwraith/invaders/terminal"
)

type cellWrite struct {
	x, y int
	c    frame.Cell
}

// recordingScreen captures renderer output
type recordingScreen struct {
	mu       sync.Mutex
	clears   int
	flushes  int
	writes   []cellWrite
	grid     [frame.Height][frame.Width]frame.Cell
	flushErr error
}

func (s *recordingScreen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
}

func (s *recordingScreen) SetCell(x, y int, c frame.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, cellWrite{x, y, c})
	s.grid[y][x] = c
}

func (s *recordingScreen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return s.flushErr
}

func (s *recordingScreen) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = nil
	s.clears = 0
	s.flushes = 0
}

func (s *recordingScreen) at(x, y int) frame.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid[y][x]
}

// TestRenderForcedWritesEveryCell verifies a forced render covers the whole frame
func TestRenderForcedWritesEveryCell(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	f := frame.New()
	f.SetRune(3, 4, 'A', tcell.StyleDefault)

	n, err := r.Render(f, f, true)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if n != frame.Width*frame.Height {
		t.Errorf("Expected %d cells written, got %d", frame.Width*frame.Height, n)
	}
	if screen.clears != 1 {
		t.Errorf("Expected 1 clear, got %d", screen.clears)
	}
	if screen.flushes != 1 {
		t.Errorf("Expected 1 flush, got %d", screen.flushes)
	}
	if screen.at(3, 4).Rune != 'A' {
		t.Errorf("Expected 'A' at (3,4), got %q", screen.at(3, 4).Rune)
	}
}

// TestRenderFirstCallIsFull verifies the first render redraws even without force
func TestRenderFirstCallIsFull(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	f := frame.New()
	n, _ := r.Render(f, f, false)
	if n != frame.Width*frame.Height {
		t.Errorf("Expected full redraw on first call, got %d cells", n)
	}
}

// TestRenderIdenticalFramesWriteNothing verifies the diff path on unchanged content
func TestRenderIdenticalFramesWriteNothing(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	prev := frame.New()
	r.Render(nil, prev, true)
	screen.reset()

	curr := frame.New()
	n, err := r.Render(prev, curr, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if n != 0 || len(screen.writes) != 0 {
		t.Errorf("Expected 0 cells written, got %d", n)
	}
	if screen.flushes != 1 {
		t.Errorf("Expected exactly one flush per call, got %d", screen.flushes)
	}
	if screen.clears != 0 {
		t.Errorf("Expected no clear on diff render, got %d", screen.clears)
	}
}

// TestRenderDiffWritesChangedCells verifies only differing cells reach the screen
func TestRenderDiffWritesChangedCells(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	prev := frame.New()
	prev.SetRune(5, 5, 'x', tcell.StyleDefault)
	r.Render(nil, prev, true)
	screen.reset()

	curr := frame.New()
	curr.SetRune(6, 5, 'x', tcell.StyleDefault)
	curr.SetRune(0, 19, 'A', tcell.StyleDefault.Bold(true))

	n, err := r.Render(prev, curr, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Expected 3 cells written, got %d: %+v", n, screen.writes)
	}

	want := map[[2]int]rune{{5, 5}: ' ', {6, 5}: 'x', {0, 19}: 'A'}
	for _, w := range screen.writes {
		exp, ok := want[[2]int{w.x, w.y}]
		if !ok {
			t.Errorf("Unexpected write at (%d,%d)", w.x, w.y)
			continue
		}
		if w.c.Rune != exp {
			t.Errorf("At (%d,%d): expected %q, got %q", w.x, w.y, exp, w.c.Rune)
		}
	}
}

// TestRenderStyleChangeIsDiff verifies a style-only change is written
func TestRenderStyleChangeIsDiff(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	prev := frame.New()
	prev.SetRune(1, 1, 'x', tcell.StyleDefault)
	r.Render(nil, prev, true)
	screen.reset()

	curr := frame.New()
	curr.SetRune(1, 1, 'x', tcell.StyleDefault.Foreground(tcell.ColorRed))
	if n, _ := r.Render(prev, curr, false); n != 1 {
		t.Errorf("Expected 1 cell written, got %d", n)
	}
}

// TestRenderInvalidate verifies a resize forces the next render to be full
func TestRenderInvalidate(t *testing.T) {
	screen := &recordingScreen{}
	r := NewRenderer(screen)

	f := frame.New()
	r.Render(nil, f, true)
	r.Invalidate()

	if n, _ := r.Render(f, f, false); n != frame.Width*frame.Height {
		t.Errorf("Expected full redraw after Invalidate, got %d", n)
	}
	if n, _ := r.Render(f, f, false); n != 0 {
		t.Errorf("Expected diff render after the redraw, got %d", n)
	}
}

// TestRenderFlushError verifies flush failures surface as IOError
func TestRenderFlushError(t *testing.T) {
	broken := errors.New("write /dev/tty: input/output error")
	screen := &recordingScreen{flushErr: broken}
	r := NewRenderer(screen)

	_, err := r.Render(nil, frame.New(), true)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %v", err)
	}
	if !errors.Is(err, broken) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
}

// TestRenderTcellScreen verifies rendering through the tcell terminal
func TestRenderTcellScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewTcell(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()
	sim.SetSize(frame.Width, frame.Height)

	r := NewRenderer(term)
	prev := frame.New()
	r.Render(nil, prev, true)

	curr := frame.New()
	curr.SetRune(20, 19, 'A', tcell.StyleDefault)
	curr.SetRune(4, 2, 'x', tcell.StyleDefault)
	if n, err := r.Render(prev, curr, false); err != nil || n != 2 {
		t.Fatalf("Expected 2 cells written, got %d (%v)", n, err)
	}

	if got, _, _, _ := sim.GetContent(20, 19); got != 'A' {
		t.Errorf("Expected 'A' at (20,19), got %q", got)
	}
	if got, _, _, _ := sim.GetContent(4, 2); got != 'x' {
		t.Errorf("Expected 'x' at (4,2), got %q", got)
	}
}
