package render

import "errors"

var (
	// ErrWorkerStopped is returned by Send once the worker has exited
	ErrWorkerStopped = errors.New("render worker stopped")

	// ErrQueueClosed is returned by Send after Close
	ErrQueueClosed = errors.New("render queue closed")
)

// IOError reports a failed terminal write
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "render " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
