package datagrid

import (
	"sync"
	"time"
)

// Throttle rate-limits a handler to at most one invocation per interval.
// The policy is leading+trailing: the first call in a window fires
// immediately, later calls within the window are coalesced into a single
// invocation at window end. The trailing invocation runs the most recent
// function passed to Do, so the final event of a burst is never dropped.
//
// Each Throttle is independent; two throttled handlers sharing state can
// interleave in either order within one window.
type Throttle struct {
	interval time.Duration

	mu      sync.Mutex
	last    time.Time
	pending func()
	timer   *time.Timer
	stopped bool

	now func() time.Time
}

// NewThrottle creates a throttle with the given window.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval, now: time.Now}
}

// Do invokes fn immediately if the window has elapsed since the last
// invocation, otherwise schedules fn for the end of the window, replacing
// any previously scheduled call.
func (t *Throttle) Do(fn func()) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := t.now()
	if t.pending == nil && (t.last.IsZero() || now.Sub(t.last) >= t.interval) {
		t.last = now
		t.mu.Unlock()
		fn()
		return
	}

	t.pending = fn
	if t.timer == nil {
		wait := t.interval - now.Sub(t.last)
		if wait < 0 {
			wait = 0
		}
		t.timer = time.AfterFunc(wait, t.fire)
	}
	t.mu.Unlock()
}

// fire runs the coalesced trailing invocation, if one is still pending.
func (t *Throttle) fire() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.timer = nil
	if fn != nil {
		t.last = t.now()
	}
	stopped := t.stopped
	t.mu.Unlock()

	if fn != nil && !stopped {
		fn()
	}
}

// Flush runs any pending trailing invocation immediately.
func (t *Throttle) Flush() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if fn != nil {
		t.last = t.now()
	}
	stopped := t.stopped
	t.mu.Unlock()

	if fn != nil && !stopped {
		fn()
	}
}

// Stop cancels any pending invocation and rejects further calls.
// Safe to call more than once.
func (t *Throttle) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
