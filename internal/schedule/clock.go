// Package schedule provides a deterministic virtual-time scheduler.
//
// A Clock never spawns goroutines: callbacks run on whichever goroutine calls
// Advance, in due-time order, so the game stays single-threaded. The platform
// advances the clock by the wall time measured between frames; tests advance
// it by exact amounts.
package schedule

import (
	"container/heap"
	"time"
)

// Timer is a pending deferred call returned by Clock.After.
type Timer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	index   int // Position in the heap, -1 once removed
	stopped bool
	fired   bool
	clock   *Clock
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running; stopping a fired or already stopped timer returns false.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.clock.queue, t.index)
	}
	return true
}

// Due returns the virtual time at which the timer fires.
func (t *Timer) Due() time.Duration {
	return t.at
}

// Clock is a virtual-time scheduler. The zero value is not usable; use NewClock.
type Clock struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewClock creates a clock at virtual time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once, delay after the current virtual time.
// Negative delays are treated as zero.
func (c *Clock) After(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	c.seq++
	t := &Timer{
		at:    c.now + delay,
		seq:   c.seq,
		fn:    fn,
		clock: c,
	}
	heap.Push(&c.queue, t)
	return t
}

// Advance moves virtual time forward by d, running every timer that becomes
// due, including timers scheduled by callbacks within the window. Timers due
// at the same instant run in scheduling order. Returns the number of callbacks run.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	fired := 0

	for c.queue.Len() > 0 {
		next := c.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&c.queue)
		c.now = next.at
		next.fired = true
		next.fn()
		fired++
	}

	c.now = target
	return fired
}

// Pending returns the number of scheduled timers that have not yet fired.
func (c *Clock) Pending() int {
	return c.queue.Len()
}

// StopAll cancels every pending timer.
func (c *Clock) StopAll() {
	for c.queue.Len() > 0 {
		t := heap.Pop(&c.queue).(*Timer)
		t.stopped = true
	}
}

// timerQueue is a min-heap ordered by (at, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
