package terminal

import (
	"testing"
)

func collect(data []byte) ([]Event, int) {
	var evs []Event
	n := parseInput(data, func(ev Event) { evs = append(evs, ev) })
	return evs, n
}

// TestParseInputGameKeys verifies the keys the game binds
func TestParseInputGameKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  Key
		r    rune
	}{
		{"left csi", "\x1b[D", KeyLeft, 0},
		{"right csi", "\x1b[C", KeyRight, 0},
		{"right ss3", "\x1bOC", KeyRight, 0},
		{"shift right", "\x1b[1;2C", KeyRight, 0},
		{"enter cr", "\r", KeyEnter, 0},
		{"enter lf", "\n", KeyEnter, 0},
		{"space", " ", KeyRune, ' '},
		{"q", "q", KeyRune, 'q'},
		{"ctrl c", "\x03", KeyCtrlC, 0},
		{"utf8", "é", KeyRune, 'é'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evs, n := collect([]byte(tt.in))
			if n != len(tt.in) {
				t.Errorf("Expected %d bytes consumed, got %d", len(tt.in), n)
			}
			if len(evs) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(evs))
			}
			if evs[0].Key != tt.key || evs[0].Rune != tt.r {
				t.Errorf("Expected %v/%q, got %v/%q", tt.key, tt.r, evs[0].Key, evs[0].Rune)
			}
		})
	}
}

// TestParseInputSequence verifies ordering across a burst of keys
func TestParseInputSequence(t *testing.T) {
	evs, _ := collect([]byte("\x1b[C\x1b[C "))
	want := []Key{KeyRight, KeyRight, KeyRune}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(evs))
	}
	for i, k := range want {
		if evs[i].Key != k {
			t.Errorf("Event %d: expected %v, got %v", i, k, evs[i].Key)
		}
	}
}

// TestParseInputIncomplete verifies partial sequences are left unconsumed
func TestParseInputIncomplete(t *testing.T) {
	for _, in := range []string{"\x1b", "\x1b[", "\x1b[1;2", "\xc3"} {
		evs, n := collect([]byte(in))
		if n != 0 || len(evs) != 0 {
			t.Errorf("%q: expected nothing consumed, got n=%d events=%d", in, n, len(evs))
		}
	}

	evs, n := collect([]byte("a\x1b["))
	if n != 1 || len(evs) != 1 {
		t.Errorf("Expected leading rune consumed only, got n=%d events=%d", n, len(evs))
	}
}

// TestParseInputDoubleEscape verifies ESC ESC yields a standalone Escape first
func TestParseInputDoubleEscape(t *testing.T) {
	evs, n := collect([]byte("\x1b\x1b[D"))
	if n != 4 {
		t.Errorf("Expected 4 bytes consumed, got %d", n)
	}
	if len(evs) != 2 || evs[0].Key != KeyEscape || evs[1].Key != KeyLeft {
		t.Errorf("Expected Escape then Left, got %+v", evs)
	}
}

// TestParseInputUnknownSwallowed verifies unbound sequences produce no events
func TestParseInputUnknownSwallowed(t *testing.T) {
	evs, n := collect([]byte("\x1b[15~\x1bx"))
	if n != 7 {
		t.Errorf("Expected 7 bytes consumed, got %d", n)
	}
	if len(evs) != 0 {
		t.Errorf("Expected no events, got %+v", evs)
	}
}
