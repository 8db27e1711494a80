package game

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	if tm.Ready() {
		t.Fatal("Expected fresh timer not ready")
	}

	tm.Update(60 * time.Millisecond)
	if tm.Ready() || tm.Remaining() != 40*time.Millisecond {
		t.Fatalf("Expected 40ms left, got %v", tm.Remaining())
	}

	tm.Update(time.Second)
	if !tm.Ready() || tm.Remaining() != 0 {
		t.Fatalf("Expected saturated ready timer, got %v", tm.Remaining())
	}

	tm.Reset()
	if tm.Fraction() != 1 {
		t.Errorf("Expected full fraction after reset, got %f", tm.Fraction())
	}
}
