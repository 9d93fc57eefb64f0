package datagrid

import (
	"sync"
	"time"
)

// Platform abstracts the host windowing system. Backends implement it;
// the core only ever asks for two capabilities: an offscreen scrollable
// probe for measuring native scrollbar thickness, and viewport resize
// observation.
type Platform interface {
	// NewScrollProbe creates an offscreen, invisible, scrollable box of
	// the given size. May return nil when probing is not possible; the
	// caller treats that as a scrollbar thickness of 0.
	NewScrollProbe(width, height float32) ScrollProbe

	// OnResize registers fn to run when the viewport size changes and
	// returns a cancel func that deregisters it. The cancel handle must
	// be retained: removing a listener requires the same registration.
	OnResize(fn func()) (cancel func())
}

// ScrollProbe is a disposable measurement box.
type ScrollProbe interface {
	OuterWidth() float32  // Border-box width, including any scrollbar
	ClientWidth() float32 // Inner width, excluding any scrollbar
	Close()
}

// probeSize is the edge length of the measurement box.
const probeSize = 99

// measureScrollbarWidth obtains the platform's native scrollbar thickness
// by creating a fixed-size scrollable probe and reading the difference
// between its outer and client width, then discarding the probe.
// Best-effort: an absent platform or probe measures as 0.
func measureScrollbarWidth(p Platform) float32 {
	if p == nil {
		return 0
	}
	probe := p.NewScrollProbe(probeSize, probeSize)
	if probe == nil {
		return 0
	}
	defer probe.Close()
	return maxf(0, probe.OuterWidth()-probe.ClientWidth())
}

// resizeDebounce is how long resize events must settle before the
// affordance re-check runs. Window resizes arrive in bursts.
const resizeDebounce = 150 * time.Millisecond

// watchResize subscribes fn to viewport resize events with debouncing.
// The returned cancel deregisters the platform listener and drops any
// pending invocation; call it on teardown so fn never runs against a
// destroyed layout.
func watchResize(p Platform, fn func()) (cancel func()) {
	if p == nil {
		return func() {}
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		stopped bool
	)

	unsubscribe := p.OnResize(func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(resizeDebounce, func() {
			mu.Lock()
			dead := stopped
			mu.Unlock()
			if !dead {
				fn()
			}
		})
	})

	return func() {
		mu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
			timer = nil
		}
		mu.Unlock()
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}
