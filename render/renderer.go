package render

import (
	"sync/atomic"

	"github.com/lixenwraith/invaders/frame"
)

// Screen is the output surface driven by the Renderer
// terminal.Terminal satisfies it
type Screen interface {
	Clear()
	SetCell(x, y int, c frame.Cell)
	Flush() error
}

// Renderer diffs frames onto a Screen
// Render is called from one goroutine, Invalidate may be called from any
type Renderer struct {
	screen Screen

	// Set until the first successful full redraw and by Invalidate
	dirty atomic.Bool
}

// NewRenderer creates a renderer, the first Render is always a full redraw
func NewRenderer(screen Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.dirty.Store(true)
	return r
}

// Invalidate forces the next Render to redraw every cell
func (r *Renderer) Invalidate() {
	r.dirty.Store(true)
}

// Render writes curr to the screen and flushes once
// With force, a nil prev, or a pending invalidation the screen is cleared and every cell written;
// otherwise only cells that differ from prev are written
// Returns the number of cells written
func (r *Renderer) Render(prev, curr *frame.Frame, force bool) (int, error) {
	full := r.dirty.Swap(false) || force || prev == nil
	written := 0

	if full {
		r.screen.Clear()
		for y := 0; y < frame.Height; y++ {
			for x := 0; x < frame.Width; x++ {
				r.screen.SetCell(x, y, curr.At(x, y))
				written++
			}
		}
	} else {
		for y := 0; y < frame.Height; y++ {
			for x := 0; x < frame.Width; x++ {
				c := curr.At(x, y)
				if c != prev.At(x, y) {
					r.screen.SetCell(x, y, c)
					written++
				}
			}
		}
	}

	if err := r.screen.Flush(); err != nil {
		// Screen state is unknown after a failed write
		r.dirty.Store(true)
		return written, &IOError{Op: "flush", Err: err}
	}
	return written, nil
}
