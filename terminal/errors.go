package terminal

import "errors"

// Sentinel errors
var (
	ErrNotTerminal = errors.New("stdin is not a terminal")
	ErrUnsupported = errors.New("terminal backend not supported on this platform")
)

// InitError reports a failure to enter the interactive session
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return "terminal init: " + e.Op + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }
