package reservation

import "testing"

func TestCountdownTickStopsAtZero(t *testing.T) {
	c := NewCountdown(2)

	if got := c.Tick(); got != 1 {
		t.Errorf("first tick = %d, want 1", got)
	}
	if got := c.Tick(); got != 0 {
		t.Errorf("second tick = %d, want 0", got)
	}
	if got := c.Tick(); got != 0 {
		t.Errorf("tick past zero = %d, want 0", got)
	}
	if !c.Expired() {
		t.Error("countdown at zero must report expired")
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	c := NewCountdown(10)
	c.Stop()
	c.Stop()

	if c.Expired() {
		t.Error("a stopped countdown with time left is not expired")
	}
}
