package datagrid

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestResolvePagePriority(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Pagination
		internal pageState
		want     PageInfo
	}{
		{"nil config disables", nil, pageState{current: 5, pageSize: 10}, PageInfo{}},
		{"controlled wins", &Pagination{Current: 2, PageSize: 10, DefaultCurrent: 9, DefaultPageSize: 99},
			pageState{current: 7, pageSize: 70}, PageInfo{Current: 2, PageSize: 10, Enabled: true}},
		{"internal beats seed", &Pagination{DefaultCurrent: 9, DefaultPageSize: 99},
			pageState{current: 7, pageSize: 70}, PageInfo{Current: 7, PageSize: 70, Enabled: true}},
		{"seed as last resort", &Pagination{DefaultCurrent: 9, DefaultPageSize: 99},
			pageState{}, PageInfo{Current: 9, PageSize: 99, Enabled: true}},
		{"fields resolve independently", &Pagination{Current: 2, DefaultPageSize: 99},
			pageState{pageSize: 70}, PageInfo{Current: 2, PageSize: 70, Enabled: true}},
		{"all sources absent", &Pagination{}, pageState{}, PageInfo{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePage(tt.cfg, tt.internal); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSliceRowsWindows(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7}

	full := sliceRows(data, PageInfo{})
	if len(full) != 7 {
		t.Errorf("disabled paging: expected full dataset, got %d", len(full))
	}

	mid := sliceRows(data, PageInfo{Current: 2, PageSize: 3, Enabled: true})
	if len(mid) != 3 || mid[0] != 4 || mid[2] != 6 {
		t.Errorf("expected [4 5 6], got %v", mid)
	}

	tail := sliceRows(data, PageInfo{Current: 3, PageSize: 3, Enabled: true})
	if len(tail) != 1 || tail[0] != 7 {
		t.Errorf("expected the 1-row tail, got %v", tail)
	}

	past := sliceRows(data, PageInfo{Current: 4, PageSize: 3, Enabled: true})
	if len(past) != 0 {
		t.Errorf("page past the end must be empty, got %v", past)
	}

	// Copy semantics even on the full-dataset path.
	full[0] = -1
	if data[0] != 1 {
		t.Error("slice must be a copy of the dataset")
	}
}

func TestPageChangeUpdatesStateBeforeNotifying(t *testing.T) {
	g := New[int](nil, RenderFuncs[int]{})
	g.SetData([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	g.SetPagination(&Pagination{DefaultCurrent: 1, DefaultPageSize: 5})

	var gotPage PageInfo
	var gotRows []int
	g.callbacks.PageChange = func(page PageInfo, rows []int) {
		gotPage = page
		gotRows = rows
	}

	g.handleCurrentChange(3)

	if g.page.current != 3 {
		t.Fatalf("internal default must be updated, got %d", g.page.current)
	}
	if gotPage.Current != 3 {
		t.Errorf("notification must carry the new current, got %d", gotPage.Current)
	}
	if len(gotRows) != 2 || gotRows[0] != 11 {
		t.Errorf("payload must be sliced from the new values, got %v", gotRows)
	}

	g.handlePageSizeChange(10)
	if gotPage.PageSize != 10 || gotPage.Current != 3 {
		t.Errorf("size change keeps the tracked current, got %+v", gotPage)
	}
	if len(gotRows) != 0 {
		t.Errorf("page 3 of size 10 is past the end, got %d rows", len(gotRows))
	}
}

func TestPageChangeRejectsInvalidValues(t *testing.T) {
	g := New[int](nil, RenderFuncs[int]{})
	g.SetPagination(&Pagination{})

	fired := 0
	g.callbacks.PageChange = func(PageInfo, []int) { fired++ }

	g.handleCurrentChange(0)
	g.handlePageSizeChange(-5)

	if fired != 0 {
		t.Errorf("invalid values must not fire change events, got %d", fired)
	}
	if g.page != (pageState{}) {
		t.Errorf("internal state must be untouched, got %+v", g.page)
	}
}

func TestParseHeight(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float32
	}{
		{"nil", nil, 0},
		{"int", 120, 120},
		{"float64", 120.5, 120.5},
		{"float32", float32(80), 80},
		{"numeric string", "240", 240},
		{"non-numeric string", "tall", 0},
		{"negative", -30, 0},
		{"negative string", "-30", 0},
		{"unknown type", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHeight(tt.in); got != tt.want {
				t.Errorf("parseHeight(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyScroll(t *testing.T) {
	tests := []struct {
		dx, dy float32
		want   ScrollAxis
	}{
		{10, 3, ScrollAxisX},
		{-10, 3, ScrollAxisX},
		{3, 10, ScrollAxisY},
		{3, -10, ScrollAxisY},
		{5, 5, ScrollAxisNone},
		{-5, 5, ScrollAxisNone},
		{0, 0, ScrollAxisNone},
	}

	for _, tt := range tests {
		if got := classifyScroll(tt.dx, tt.dy); got != tt.want {
			t.Errorf("classifyScroll(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestPagerWindow(t *testing.T) {
	tests := []struct {
		current, total int
		first, last    int
	}{
		{1, 3, 1, 3},
		{1, 20, 1, 7},
		{10, 20, 7, 13},
		{20, 20, 14, 20},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		first, last := pagerWindow(tt.current, tt.total)
		if first != tt.first || last != tt.last {
			t.Errorf("pagerWindow(%d, %d) = %d..%d, want %d..%d",
				tt.current, tt.total, first, last, tt.first, tt.last)
		}
	}
}

func TestNextPagerSize(t *testing.T) {
	if got := nextPagerSize(10); got != 20 {
		t.Errorf("after 10: got %d, want 20", got)
	}
	if got := nextPagerSize(100); got != 10 {
		t.Errorf("after 100: got %d, want 10 (wrap)", got)
	}
	if got := nextPagerSize(7); got != 10 {
		t.Errorf("unknown size: got %d, want 10", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 100, 8); got != "short" {
		t.Errorf("fitting text must pass through, got %q", got)
	}
	if got := truncateText("a long column value", 80, 8); got != "a long c.." {
		t.Errorf("got %q, want %q", got, "a long c..")
	}
	if got := truncateText("anything", 100, 0); got != "anything" {
		t.Errorf("zero char width must pass through, got %q", got)
	}
}

func TestVisibleRowRange(t *testing.T) {
	first, last := visibleRowRange(100, 28, 280, 0)
	if first != 0 || last != 12 {
		t.Errorf("at top: got %d..%d, want 0..12", first, last)
	}

	first, last = visibleRowRange(100, 28, 280, 560)
	if first != 20 || last != 32 {
		t.Errorf("scrolled: got %d..%d, want 20..32", first, last)
	}

	first, last = visibleRowRange(5, 28, 280, 0)
	if first != 0 || last != 5 {
		t.Errorf("short dataset: got %d..%d, want 0..5", first, last)
	}

	if first, last = visibleRowRange(0, 28, 280, 0); first != 0 || last != 0 {
		t.Errorf("empty dataset: got %d..%d", first, last)
	}
}

// fakeProbePlatform drives the viewport helpers directly.
type fakeProbePlatform struct {
	outer, client float32
	closed        int
	resizeFn      func()
	unsubscribed  int
}

type fakeProbe struct{ p *fakeProbePlatform }

func (f fakeProbe) OuterWidth() float32  { return f.p.outer }
func (f fakeProbe) ClientWidth() float32 { return f.p.client }
func (f fakeProbe) Close()               { f.p.closed++ }

func (p *fakeProbePlatform) NewScrollProbe(w, h float32) ScrollProbe {
	p.outer = w
	p.client = w - 17
	return fakeProbe{p: p}
}

func (p *fakeProbePlatform) OnResize(fn func()) (cancel func()) {
	p.resizeFn = fn
	return func() { p.unsubscribed++ }
}

func TestMeasureScrollbarWidth(t *testing.T) {
	if got := measureScrollbarWidth(nil); got != 0 {
		t.Errorf("nil platform must measure 0, got %v", got)
	}

	p := &fakeProbePlatform{}
	if got := measureScrollbarWidth(p); got != 17 {
		t.Errorf("expected outer-client = 17, got %v", got)
	}
	if p.closed != 1 {
		t.Errorf("the probe must be discarded after measuring, got %d closes", p.closed)
	}
}

func TestWatchResizeDebounces(t *testing.T) {
	p := &fakeProbePlatform{}

	var fired atomic.Int32
	done := make(chan struct{}, 1)
	cancel := watchResize(p, func() {
		fired.Add(1)
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer cancel()

	// A burst of resize events collapses into one invocation.
	p.resizeFn()
	p.resizeFn()
	p.resizeFn()

	if fired.Load() != 0 {
		t.Fatal("the handler must not run before the settle window")
	}

	select {
	case <-done:
	case <-time.After(resizeDebounce + 500*time.Millisecond):
		t.Fatal("debounced handler never ran")
	}
	if got := fired.Load(); got != 1 {
		t.Errorf("expected exactly one invocation, got %d", got)
	}
}

func TestWatchResizeCancel(t *testing.T) {
	p := &fakeProbePlatform{}

	var fired atomic.Int32
	cancel := watchResize(p, func() { fired.Add(1) })

	p.resizeFn()
	cancel()

	time.Sleep(resizeDebounce + 50*time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("cancel must drop the pending invocation, got %d", got)
	}
	if p.unsubscribed != 1 {
		t.Errorf("cancel must deregister the platform listener, got %d", p.unsubscribed)
	}
}

func TestRowCallbacksDispatch(t *testing.T) {
	var got []RowEvent
	record := func(ev RowEvent) func(string, int) {
		return func(string, int) { got = append(got, ev) }
	}

	cb := RowCallbacks[string]{
		Click:       record(RowEventClick),
		DoubleClick: record(RowEventDoubleClick),
		ContextMenu: record(RowEventContextMenu),
		HoverEnter:  record(RowEventHoverEnter),
		HoverLeave:  record(RowEventHoverLeave),
	}

	events := []RowEvent{RowEventClick, RowEventDoubleClick, RowEventContextMenu, RowEventHoverEnter, RowEventHoverLeave}
	for _, ev := range events {
		cb.dispatch(ev, "row", 0)
	}

	if len(got) != len(events) {
		t.Fatalf("expected %d dispatches, got %d", len(events), len(got))
	}
	for i, ev := range events {
		if got[i] != ev {
			t.Errorf("dispatch %d: got %v, want %v", i, got[i], ev)
		}
	}

	// Nil handlers are skipped, not a panic.
	var empty RowCallbacks[string]
	empty.dispatch(RowEventClick, "row", 0)
}
