package datagrid

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

// gridLogger is the logger for grid internals.
// Set DATAGRID_DEBUG for debug-level traces of the scroll/compose paths.
var gridLogger = newGridLogger()

func newGridLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("DATAGRID_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// CellRenderer is the body collaborator contract: it turns a row record
// into a row key and per-column cell text. The grid trusts it and never
// interprets the content.
type CellRenderer[T any] interface {
	RowKey(row T) string
	CellText(row T, col Column) string
}

// RenderFuncs adapts plain functions to CellRenderer.
type RenderFuncs[T any] struct {
	Key  func(row T) string
	Cell func(row T, col Column) string
}

func (r RenderFuncs[T]) RowKey(row T) string {
	if r.Key == nil {
		return ""
	}
	return r.Key(row)
}

func (r RenderFuncs[T]) CellText(row T, col Column) string {
	if r.Cell == nil {
		return ""
	}
	return r.Cell(row, col)
}

// doubleClickWindow is the maximum gap between two clicks on the same row
// for the second to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// Frame is the composed view model for one render pass. It is derived
// state, owned by the grid for a single pass and recomputed from scratch
// on the next one.
type Frame[T any] struct {
	Columns  []Column // Flattened leaves, widths resolved, render order
	HasFixed bool
	Mode     LayoutMode
	Width    float32
	Height   float32 // Parsed body height (0 in single-block mode)

	Page       PageInfo
	TotalPages int
	Rows       []T // Current dataset slice (a copy, never a live view)

	// HeaderPadRight compensates header padding by the measured scrollbar
	// width so header and body columns stay pixel-aligned when the body
	// shows a scrollbar and the header does not. Non-zero only in split
	// mode with fixed columns.
	HeaderPadRight float32

	Loading bool
	// Empty iff the slice has no rows AND the grid is not loading;
	// loading suppresses the empty state to avoid a flash of "no data".
	Empty bool

	Affordance Affordance
}

// Grid is the top-level orchestrator. It owns the reconciler's internal
// pagination defaults, the header/body scroll regions, and the scroll
// coordinator; everything else it renders is derived per pass.
//
// All methods are intended for the host's UI thread. The only state
// touched from other goroutines (throttle trailing edges, debounced
// resize) is the scroll regions and the Coordinator, which lock
// internally.
type Grid[T any] struct {
	platform Platform
	cells    CellRenderer[T]
	style    Style
	opts     options

	// Inbound configuration, read-only to the grid
	columns    []Column
	data       []T
	pagination *Pagination
	loading    bool

	callbacks Callbacks[T]

	// Internal pagination defaults, written only by pagination-control
	// change events
	page pageState

	mu     sync.Mutex
	header *RegionState
	body   *RegionState
	coord  *Coordinator
	mode   LayoutMode

	scrollbarW float32
	measured   bool

	fontTex uint32

	mounted      bool
	cancelResize func()

	// Row interaction tracking
	hoverRow  int
	lastClick time.Time
	clickRow  int

	pager pagerState
}

// New creates a grid bound to a platform and body renderer.
func New[T any](platform Platform, cells CellRenderer[T], opts ...Option) *Grid[T] {
	return &Grid[T]{
		platform: platform,
		cells:    cells,
		style:    DefaultStyle(),
		opts:     applyOptions(opts),
		header:   &RegionState{},
		body:     &RegionState{},
		hoverRow: -1,
		clickRow: -1,
	}
}

// SetStyle replaces the grid style.
func (g *Grid[T]) SetStyle(s Style) { g.style = s }

// Style returns the current style.
func (g *Grid[T]) Style() Style { return g.style }

// SetColumns supplies the column specification tree. The grid only reads
// it; flattening happens during compose.
func (g *Grid[T]) SetColumns(cols []Column) { g.columns = cols }

// SetData supplies the full dataset. The grid reads contiguous
// sub-ranges of it and never mutates it.
func (g *Grid[T]) SetData(rows []T) { g.data = rows }

// SetPagination supplies the pagination configuration. nil disables
// pagination entirely.
func (g *Grid[T]) SetPagination(p *Pagination) { g.pagination = p }

// SetLoading toggles the loading overlay. The underlying table stays in
// the layout tree so its metrics remain valid while loading.
func (g *Grid[T]) SetLoading(v bool) { g.loading = v }

// SetCallbacks installs the outbound notification handlers.
func (g *Grid[T]) SetCallbacks(cb Callbacks[T]) {
	g.callbacks = cb
	g.mu.Lock()
	if g.coord != nil {
		g.coord.SetNotify(cb.ScrollX, cb.ScrollY)
	}
	g.mu.Unlock()
}

// Mount prepares platform-backed state: when the columns include at
// least one fixed column it measures the native scrollbar thickness
// (memoized per grid instance) and registers a debounced resize listener
// that re-evaluates the scroll affordances. Idempotent.
func (g *Grid[T]) Mount() {
	if g.mounted {
		return
	}
	g.mounted = true

	flat := FlattenColumns(g.columns)
	if !hasFixedColumns(flat) {
		return
	}

	g.ensureScrollbarWidth()
	g.cancelResize = watchResize(g.platform, func() {
		g.mu.Lock()
		coord := g.coord
		g.mu.Unlock()
		if coord != nil {
			coord.Refresh()
		}
	})
	gridLogger.Debug("grid mounted", "scrollbarWidth", g.scrollbarW)
}

// Unmount deregisters the resize listener and stops the scroll
// coordinator's throttles. Required before discarding the grid so no
// handler operates on a destroyed layout.
func (g *Grid[T]) Unmount() {
	if !g.mounted {
		return
	}
	g.mounted = false

	if g.cancelResize != nil {
		g.cancelResize()
		g.cancelResize = nil
	}
	g.mu.Lock()
	if g.coord != nil {
		g.coord.Close()
		g.coord = nil
	}
	g.mu.Unlock()
}

// ensureScrollbarWidth lazily memoizes the probe measurement.
func (g *Grid[T]) ensureScrollbarWidth() {
	if g.measured {
		return
	}
	g.scrollbarW = measureScrollbarWidth(g.platform)
	g.measured = true
}

// ScrollbarWidth returns the memoized probe measurement (0 before the
// first fixed-column mount).
func (g *Grid[T]) ScrollbarWidth() float32 { return g.scrollbarW }

// Coordinator returns the current scroll coordinator, or nil before the
// first compose.
func (g *Grid[T]) Coordinator() *Coordinator {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coord
}

// Body returns the body scroll region.
func (g *Grid[T]) Body() *RegionState { return g.body }

// Header returns the header scroll region.
func (g *Grid[T]) Header() *RegionState { return g.header }

// Compose runs one orchestration pass: flatten columns, choose the
// layout mode, reconcile pagination, slice rows, and derive the header
// compensation and empty state. avail is the area the host offers the
// grid; the configured width option, when set, wins.
func (g *Grid[T]) Compose(avail Vec2) *Frame[T] {
	flat := FlattenColumns(g.columns)
	hasFixed := hasFixedColumns(flat)

	width := GetOpt(g.opts, OptWidth)
	if width <= 0 {
		width = avail.X
	}

	height := parseHeight(GetOpt(g.opts, OptHeight))
	mode := layoutModeFor(height)

	page := resolvePage(g.pagination, g.page)
	rows := sliceRows(g.data, page)

	if hasFixed {
		g.ensureScrollbarWidth()
	}
	padRight := float32(0)
	if mode == LayoutFixedHeaderSplit && hasFixed {
		padRight = g.scrollbarW
	}

	f := &Frame[T]{
		Columns:        computeColumnWidths(flat, width-padRight, &g.style),
		HasFixed:       hasFixed,
		Mode:           mode,
		Width:          width,
		Height:         height,
		Page:           page,
		TotalPages:     page.totalPages(len(g.data)),
		Rows:           rows,
		HeaderPadRight: padRight,
		Loading:        g.loading,
		Empty:          len(rows) == 0 && !g.loading,
	}

	g.syncRegions(f)
	f.Affordance = g.coordForMode(mode).Affordance()
	return f
}

// syncRegions updates the scroll regions' geometry from the composed
// frame and re-clamps their offsets against the new bounds.
func (g *Grid[T]) syncRegions(f *Frame[T]) {
	rowH := g.style.rowHeightFor(GetOpt(g.opts, OptSize))
	contentW := columnsWidth(f.Columns)
	contentH := float32(len(f.Rows)) * rowH

	bodyViewH := f.Height
	if f.Mode == LayoutSingleBlock {
		bodyViewH = contentH
	}

	g.body.SetExtents(contentW, contentH, f.Width, bodyViewH)
	g.header.SetExtents(contentW, rowH, f.Width-f.HeaderPadRight, rowH)
}

// coordForMode returns the coordinator, rebuilding it when the layout
// mode changed (the mode governs which regions exist to attach to). The
// affordance check runs right after the rebuild, once the regions carry
// the settled geometry of this pass.
func (g *Grid[T]) coordForMode(mode LayoutMode) *Coordinator {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.coord == nil || g.mode != mode {
		if g.coord != nil {
			g.coord.Close()
		}
		header := ScrollRegion(nil)
		if mode == LayoutFixedHeaderSplit {
			header = g.header
		}
		g.coord = NewCoordinator(mode, header, g.body)
		g.coord.SetNotify(g.callbacks.ScrollX, g.callbacks.ScrollY)
		g.mode = mode
		gridLogger.Debug("coordinator rebuilt", "mode", mode.String())
	}
	g.coord.Refresh()
	return g.coord
}

// handleCurrentChange is the pagination control's "current changed"
// event. The internal default is updated first; the notification payload
// slice is then computed from the new values.
func (g *Grid[T]) handleCurrentChange(current int) {
	if current < 1 {
		return
	}
	g.page.current = current
	g.emitPageChange()
}

// handlePageSizeChange is the pagination control's "page-size changed"
// event. Same ordering as handleCurrentChange.
func (g *Grid[T]) handlePageSizeChange(size int) {
	if size < 1 {
		return
	}
	g.page.pageSize = size
	g.emitPageChange()
}

func (g *Grid[T]) emitPageChange() {
	page := resolvePage(g.pagination, g.page)
	gridLogger.Debug("page change", "current", page.Current, "pageSize", page.PageSize)
	if g.callbacks.PageChange != nil {
		g.callbacks.PageChange(page, sliceRows(g.data, page))
	}
}

// emitRowEvent routes one catalog event for the row at index within the
// current slice.
func (g *Grid[T]) emitRowEvent(ev RowEvent, rows []T, index int) {
	if index < 0 || index >= len(rows) {
		return
	}
	g.callbacks.Row.dispatch(ev, rows[index], index)
}
