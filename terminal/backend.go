package terminal

// Backend abstracts the platform tty used by the ANSI terminal
type Backend interface {
	// Init puts the tty into raw mode
	Init() error

	// Fini restores the tty mode saved by Init
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// A nil slice with nil error means timeout or stop
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
