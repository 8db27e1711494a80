package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, check Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrlC:     "ctrl+c",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error, Err is set
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// KeyEvent builds a key event, r is only meaningful with KeyRune
func KeyEvent(k Key, r rune) Event {
	return Event{Type: EventKey, Key: k, Rune: r}
}
