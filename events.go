package datagrid

// RowEvent identifies one entry of the fixed row interaction catalog the
// body collaborator may emit. The catalog is statically declared: the
// grid never derives handler names at runtime, it dispatches through the
// typed RowCallbacks struct below.
type RowEvent int

const (
	RowEventClick RowEvent = iota
	RowEventDoubleClick
	RowEventContextMenu
	RowEventHoverEnter
	RowEventHoverLeave
)

// String returns the event name for logging.
func (e RowEvent) String() string {
	switch e {
	case RowEventClick:
		return "row-click"
	case RowEventDoubleClick:
		return "row-dblclick"
	case RowEventContextMenu:
		return "row-contextmenu"
	case RowEventHoverEnter:
		return "row-hover-enter"
	case RowEventHoverLeave:
		return "row-hover-leave"
	default:
		return "row-unknown"
	}
}

// RowCallbacks is the statically typed handler mapping for the row event
// catalog. The grid passes these through from the body region without
// interpreting their semantics. index is the row's position within the
// current slice, not within the full dataset.
type RowCallbacks[T any] struct {
	Click       func(row T, index int)
	DoubleClick func(row T, index int)
	ContextMenu func(row T, index int)
	HoverEnter  func(row T, index int)
	HoverLeave  func(row T, index int)
}

// dispatch routes one catalog event to its handler, if installed.
func (c *RowCallbacks[T]) dispatch(ev RowEvent, row T, index int) {
	var fn func(T, int)
	switch ev {
	case RowEventClick:
		fn = c.Click
	case RowEventDoubleClick:
		fn = c.DoubleClick
	case RowEventContextMenu:
		fn = c.ContextMenu
	case RowEventHoverEnter:
		fn = c.HoverEnter
	case RowEventHoverLeave:
		fn = c.HoverLeave
	}
	if fn != nil {
		fn(row, index)
	}
}

// Callbacks are the outbound notifications the grid emits to its host.
type Callbacks[T any] struct {
	// PageChange fires when the pagination control reports a new current
	// page or page size. rows is the dataset slice computed from the
	// just-applied pagination values (state is updated first, then the
	// payload is captured).
	PageChange func(page PageInfo, rows []T)

	// ScrollX and ScrollY fire for body scroll events classified as
	// horizontal or vertical. Indeterminate events fire neither.
	ScrollX func(ScrollEvent)
	ScrollY func(ScrollEvent)

	Row RowCallbacks[T]
}
