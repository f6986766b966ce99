package clock

import (
	"testing"
	"time"
)

func TestRealClockNow(t *testing.T) {
	c := RealClock{}
	before := time.Now()
	got := c.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("RealClock.Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestMockClock(t *testing.T) {
	c := &MockClock{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(base)
	if !c.Now().Equal(base) {
		t.Errorf("MockClock.Now() = %v, want %v", c.Now(), base)
	}
	c.Advance(90 * time.Second)
	if !c.Now().Equal(base.Add(90 * time.Second)) {
		t.Errorf("MockClock.Now() after Advance = %v", c.Now())
	}
}
