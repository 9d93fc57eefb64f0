package datagrid

import (
	"sync"
	"time"
)

// Throttle windows for the two scroll handlers. The mirror is layout
// critical and runs nearly unthrottled; the observational handler is
// coarser because stale affordance flags self-correct on the next event.
const (
	mirrorThrottleWindow = 10 * time.Millisecond
	notifyThrottleWindow = 100 * time.Millisecond
)

// ScrollRegion is the platform capability the coordinator operates on: a
// scrollable element whose offsets can be read and whose horizontal
// offset can be written.
type ScrollRegion interface {
	ScrollLeft() float32
	SetScrollLeft(v float32)
	ScrollTop() float32
	ScrollWidth() float32
	ClientWidth() float32
}

// RegionState is an in-memory ScrollRegion. The grid owns one per scroll
// container; hosts and tests can use it to drive the coordinator
// directly. Offsets are clamped to the content bounds on write. All
// methods are safe for concurrent use: the throttles' trailing edges
// read and write regions from timer goroutines while the host keeps
// scrolling.
type RegionState struct {
	mu                 sync.Mutex
	left, top          float32
	contentW, contentH float32
	viewW, viewH       float32
}

func (r *RegionState) ScrollLeft() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.left
}

func (r *RegionState) ScrollTop() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.top
}

func (r *RegionState) ScrollWidth() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contentW
}

func (r *RegionState) ClientWidth() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewW
}

// ScrollHeight returns the content height.
func (r *RegionState) ScrollHeight() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contentH
}

// ClientHeight returns the view height.
func (r *RegionState) ClientHeight() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewH
}

func (r *RegionState) SetScrollLeft(v float32) {
	r.mu.Lock()
	r.left = clampf(v, 0, maxf(0, r.contentW-r.viewW))
	r.mu.Unlock()
}

// SetScrollTop clamps and stores the vertical offset.
func (r *RegionState) SetScrollTop(v float32) {
	r.mu.Lock()
	r.top = clampf(v, 0, maxf(0, r.contentH-r.viewH))
	r.mu.Unlock()
}

// SetExtents updates the content and view geometry in one step and
// re-clamps both offsets against the new bounds.
func (r *RegionState) SetExtents(contentW, contentH, viewW, viewH float32) {
	r.mu.Lock()
	r.contentW, r.contentH = contentW, contentH
	r.viewW, r.viewH = viewW, viewH
	r.left = clampf(r.left, 0, maxf(0, contentW-viewW))
	r.top = clampf(r.top, 0, maxf(0, contentH-viewH))
	r.mu.Unlock()
}

// Affordance holds the derived "can scroll further" flags used to drive
// visual cues such as edge shadows. Presentation-only, never
// authoritative: recomputed on every scroll and resize.
type Affordance struct {
	CanScrollLeft  bool
	CanScrollRight bool
}

// affordanceOf derives the flags from a region's current offsets.
func affordanceOf(r ScrollRegion) Affordance {
	left := r.ScrollLeft()
	return Affordance{
		CanScrollLeft:  left > 0,
		CanScrollRight: left+r.ClientWidth() < r.ScrollWidth(),
	}
}

// ScrollAxis classifies a scroll event by its dominant direction.
type ScrollAxis int

const (
	ScrollAxisNone ScrollAxis = iota // Indeterminate: no notification
	ScrollAxisX
	ScrollAxisY
)

// ScrollEvent is the payload of a scroll-x / scroll-y notification.
type ScrollEvent struct {
	Axis      ScrollAxis
	Left, Top float32 // Offsets at classification time
	DeltaLeft float32 // Change since the previous reading
	DeltaTop  float32
}

// Coordinator keeps decoupled header/body scroll regions in sync and
// derives scroll affordances and direction notifications from body
// scroll events.
//
// The two entry points are throttled independently (leading+trailing, so
// the final event of a burst is never dropped), which means the mirrored
// header offset and the reported affordance flags can briefly disagree
// within one notify window. Both converge on the trailing edge.
//
// Trailing edges run on timer goroutines. Region access from there is
// safe because RegionState locks internally; the outbound notification
// callbacks inherit the goroutine, so handlers that touch other host
// state must synchronize.
type Coordinator struct {
	mode   LayoutMode
	header ScrollRegion
	body   ScrollRegion

	mirror *Throttle
	notify *Throttle

	mu       sync.Mutex
	prevLeft float32
	prevTop  float32
	aff      Affordance

	onScrollX func(ScrollEvent)
	onScrollY func(ScrollEvent)
}

// NewCoordinator creates a coordinator over the regions the layout mode
// produced. header may be nil in single-block mode; body may be nil
// before mount, in which case every handler no-ops.
func NewCoordinator(mode LayoutMode, header, body ScrollRegion) *Coordinator {
	c := &Coordinator{
		mode:   mode,
		header: header,
		body:   body,
		mirror: NewThrottle(mirrorThrottleWindow),
		notify: NewThrottle(notifyThrottleWindow),
	}
	if body != nil {
		// Seed the previous reading so the first event classifies against
		// the real starting offsets rather than zero.
		c.prevLeft = body.ScrollLeft()
		c.prevTop = body.ScrollTop()
		c.aff = affordanceOf(body)
	}
	return c
}

// SetNotify installs the outbound scroll-x / scroll-y callbacks. They
// may be invoked from a throttle's timer goroutine.
func (c *Coordinator) SetNotify(onX, onY func(ScrollEvent)) {
	c.mu.Lock()
	c.onScrollX = onX
	c.onScrollY = onY
	c.mu.Unlock()
}

// OnBodyScroll mirrors the body's scrollLeft into the header region so
// header and body columns stay aligned during horizontal scroll. One-way:
// the header never drives the body. Only meaningful in split mode.
func (c *Coordinator) OnBodyScroll() {
	if c.mode != LayoutFixedHeaderSplit {
		return
	}
	c.mirror.Do(func() {
		if c.header == nil || c.body == nil {
			return
		}
		c.header.SetScrollLeft(c.body.ScrollLeft())
	})
}

// OnScroll recomputes the affordance flags, classifies the scroll as
// horizontal or vertical by comparing the change in scrollLeft vs
// scrollTop since the previous reading, and emits the matching
// notification. Indeterminate events update the flags but notify nobody.
func (c *Coordinator) OnScroll() {
	c.notify.Do(c.observe)
}

func (c *Coordinator) observe() {
	if c.body == nil {
		return
	}

	left := c.body.ScrollLeft()
	top := c.body.ScrollTop()

	c.mu.Lock()
	c.aff = affordanceOf(c.body)
	ev := ScrollEvent{
		Left:      left,
		Top:       top,
		DeltaLeft: left - c.prevLeft,
		DeltaTop:  top - c.prevTop,
	}
	c.prevLeft = left
	c.prevTop = top
	onX, onY := c.onScrollX, c.onScrollY
	c.mu.Unlock()

	ev.Axis = classifyScroll(ev.DeltaLeft, ev.DeltaTop)
	switch ev.Axis {
	case ScrollAxisX:
		if onX != nil {
			onX(ev)
		}
	case ScrollAxisY:
		if onY != nil {
			onY(ev)
		}
	}
}

// classifyScroll picks the dominant axis. Equal magnitudes (including
// no movement at all) are indeterminate.
func classifyScroll(deltaLeft, deltaTop float32) ScrollAxis {
	absX := deltaLeft
	if absX < 0 {
		absX = -absX
	}
	absY := deltaTop
	if absY < 0 {
		absY = -absY
	}
	switch {
	case absX > absY:
		return ScrollAxisX
	case absY > absX:
		return ScrollAxisY
	default:
		return ScrollAxisNone
	}
}

// Refresh re-evaluates the affordance flags without classifying or
// notifying. Called on viewport resize, where horizontal overflow may
// have appeared or vanished without any scroll event.
func (c *Coordinator) Refresh() {
	if c.body == nil {
		return
	}
	aff := affordanceOf(c.body)
	c.mu.Lock()
	c.aff = aff
	c.mu.Unlock()
}

// Affordance returns the most recently computed flags.
func (c *Coordinator) Affordance() Affordance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aff
}

// Flush forces any pending trailing invocations to run now. Useful when
// the host needs the mirrored offset to be current before a measurement.
func (c *Coordinator) Flush() {
	c.mirror.Flush()
	c.notify.Flush()
}

// Close stops both throttles. Pending trailing invocations are dropped.
func (c *Coordinator) Close() {
	c.mirror.Stop()
	c.notify.Stop()
}
