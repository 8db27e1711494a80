package render

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/invaders/frame"
)

// Worker consumes frames from a Queue and draws them with a Renderer
type Worker struct {
	queue    *Queue
	renderer *Renderer

	// Last frame successfully drawn, the diff base for the next one
	last *frame.Frame

	rendered atomic.Uint64
	cells    atomic.Uint64
}

// NewWorker binds a worker to its queue and renderer
func NewWorker(q *Queue, r *Renderer) *Worker {
	return &Worker{queue: q, renderer: r}
}

// Run clears the screen with a blank frame, then renders queued frames in order
// It returns nil once the queue is closed and drained, or the first *IOError
// The queue is marked stopped on return either way
func (w *Worker) Run() error {
	defer w.queue.Stop()

	blank := frame.New()
	if _, err := w.renderer.Render(nil, blank, true); err != nil {
		log.Printf("render: initial redraw failed: %v", err)
		return err
	}
	w.last = blank

	for f := range w.queue.Frames() {
		n, err := w.renderer.Render(w.last, f, false)
		if err != nil {
			log.Printf("render: frame %d failed: %v", w.rendered.Load()+1, err)
			return err
		}
		w.last = f
		w.rendered.Add(1)
		w.cells.Add(uint64(n))
	}

	log.Printf("render: queue drained after %d frames, %d cells written", w.rendered.Load(), w.cells.Load())
	return nil
}

// Rendered returns the number of queued frames drawn so far
func (w *Worker) Rendered() uint64 {
	return w.rendered.Load()
}

// CellsWritten returns the total number of cells written for queued frames
func (w *Worker) CellsWritten() uint64 {
	return w.cells.Load()
}
