package render

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/invaders/frame"
)

// Queue is a bounded single-producer single-consumer frame FIFO
// When full, Send evicts the oldest queued frame so the producer never blocks
type Queue struct {
	ch chan *frame.Frame

	mu     sync.Mutex // Serializes Send against Close
	closed bool

	stopped  chan struct{}
	stopOnce sync.Once

	dropped atomic.Uint64
	sent    atomic.Uint64
}

// NewQueue creates a queue holding at most capacity frames
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		ch:      make(chan *frame.Frame, capacity),
		stopped: make(chan struct{}),
	}
}

// Send enqueues f, transferring ownership to the consumer
func (q *Queue) Send(f *frame.Frame) error {
	select {
	case <-q.stopped:
		return ErrWorkerStopped
	default:
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	for {
		select {
		case q.ch <- f:
			q.sent.Add(1)
			return nil
		default:
		}

		// Full: drop the oldest, the consumer may have taken it in the meantime
		select {
		case <-q.ch:
			q.dropped.Add(1)
		default:
		}
	}
}

// Close ends the stream, the consumer still receives every queued frame
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

// Frames is the consumer side, closed after Close once drained
func (q *Queue) Frames() <-chan *frame.Frame {
	return q.ch
}

// Stop marks the consumer as gone, later Sends fail with ErrWorkerStopped
func (q *Queue) Stop() {
	q.stopOnce.Do(func() { close(q.stopped) })
}

// Stopped is closed once the consumer has exited
func (q *Queue) Stopped() <-chan struct{} {
	return q.stopped
}

// Dropped returns how many frames were evicted unrendered
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Sent returns how many frames were accepted
func (q *Queue) Sent() uint64 {
	return q.sent.Load()
}
