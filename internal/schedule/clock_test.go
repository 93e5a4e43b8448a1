package schedule

import (
	"testing"
	"time"
)

func TestAfterFiresWhenDue(t *testing.T) {
	c := NewClock()
	fired := 0
	c.After(50*time.Millisecond, func() { fired++ })

	if n := c.Advance(49 * time.Millisecond); n != 0 || fired != 0 {
		t.Fatalf("timer fired early (n=%d, fired=%d)", n, fired)
	}
	if n := c.Advance(time.Millisecond); n != 1 || fired != 1 {
		t.Fatalf("timer should fire exactly at its due time (n=%d, fired=%d)", n, fired)
	}
	if c.Now() != 50*time.Millisecond {
		t.Errorf("Now() = %v, expected 50ms", c.Now())
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestOrdering(t *testing.T) {
	c := NewClock()
	var order []string
	c.After(20*time.Millisecond, func() { order = append(order, "b") })
	c.After(10*time.Millisecond, func() { order = append(order, "a") })
	c.After(20*time.Millisecond, func() { order = append(order, "c") })

	c.Advance(time.Second)

	expected := []string{"a", "b", "c"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %s, expected %s", i, order[i], expected[i])
		}
	}
}

func TestSelfReschedulingCatchesUp(t *testing.T) {
	c := NewClock()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		c.After(50*time.Millisecond, tick)
	}
	c.After(50*time.Millisecond, tick)

	// A slow frame covers several periods; each due tick still runs once.
	c.Advance(175 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("ticks = %d, expected 3", ticks)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", c.Pending())
	}
}

func TestStop(t *testing.T) {
	c := NewClock()
	fired := false
	timer := c.After(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop() should report true")
	}
	if timer.Stop() {
		t.Error("second Stop() should report false")
	}

	c.Advance(time.Second)
	if fired {
		t.Error("stopped timer must not fire")
	}

	done := c.After(10*time.Millisecond, func() {})
	c.Advance(10 * time.Millisecond)
	if done.Stop() {
		t.Error("Stop() on a fired timer should report false")
	}

	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("Stop() on nil timer should report false")
	}
}

func TestStopAll(t *testing.T) {
	c := NewClock()
	fired := 0
	for i := 1; i <= 3; i++ {
		c.After(time.Duration(i)*time.Millisecond, func() { fired++ })
	}

	c.StopAll()
	c.Advance(time.Second)

	if fired != 0 {
		t.Errorf("fired = %d after StopAll, expected 0", fired)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}
