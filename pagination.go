package datagrid

// Pagination is the caller-supplied pagination configuration. Supplying a
// nil *Pagination to the grid disables pagination entirely: the full
// dataset is shown and no pagination control is rendered.
//
// Current and PageSize make the grid controlled for that field: the
// caller's value is authoritative every frame. A zero value leaves the
// field uncontrolled, in which case the grid tracks the pagination
// control's change events internally, seeded from DefaultCurrent and
// DefaultPageSize.
type Pagination struct {
	Current  int // Controlled current page (0 = uncontrolled)
	PageSize int // Controlled page size (0 = uncontrolled)

	DefaultCurrent  int // Uncontrolled seed for the current page
	DefaultPageSize int // Uncontrolled seed for the page size
}

// pageState holds the internally tracked pagination defaults. The fields
// are written only from pagination-control change events and exist solely
// to give uncontrolled usage continuity across those events. Zero means
// "never reported".
type pageState struct {
	current  int
	pageSize int
}

// PageInfo is the resolved, authoritative pagination pair for one frame.
// Enabled is false when no pagination configuration was supplied at all.
// When Enabled is true but Current or PageSize is 0, no usable value
// exists from any source and the slicer shows the full dataset.
type PageInfo struct {
	Current  int
	PageSize int
	Enabled  bool
}

// resolvePage merges the controlled configuration with the internally
// tracked defaults into one authoritative pair. Priority, per field:
//
//	controlled value > internally tracked default > caller-supplied seed
//
// A page of 0 is never produced by the chain; 0 simply means every source
// was absent.
func resolvePage(cfg *Pagination, internal pageState) PageInfo {
	if cfg == nil {
		return PageInfo{}
	}

	info := PageInfo{Enabled: true}

	switch {
	case cfg.Current > 0:
		info.Current = cfg.Current
	case internal.current > 0:
		info.Current = internal.current
	default:
		info.Current = cfg.DefaultCurrent
	}

	switch {
	case cfg.PageSize > 0:
		info.PageSize = cfg.PageSize
	case internal.pageSize > 0:
		info.PageSize = internal.pageSize
	default:
		info.PageSize = cfg.DefaultPageSize
	}

	return info
}

// totalPages returns the page count for a dataset length, minimum 1.
func (p PageInfo) totalPages(datasetLen int) int {
	if !p.Enabled || p.PageSize <= 0 {
		return 1
	}
	pages := (datasetLen + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// sliceRows derives the visible row window from the full dataset and the
// resolved pagination state. The returned slice is always a copy, never a
// view: mutating the source dataset after slicing does not retroactively
// change an already-produced slice.
//
// Disabled pagination, a missing current/pageSize, or a dataset that fits
// in one page all return the full dataset. Otherwise the half-open window
// [(current-1)*size, current*size) is returned, clamped to the dataset's
// bounds; requesting a page past the end yields an empty slice, not an
// error.
func sliceRows[T any](dataset []T, page PageInfo) []T {
	if !page.Enabled || page.Current <= 0 || page.PageSize <= 0 || len(dataset) <= page.PageSize {
		out := make([]T, len(dataset))
		copy(out, dataset)
		return out
	}

	start := (page.Current - 1) * page.PageSize
	if start >= len(dataset) {
		return []T{}
	}
	end := start + page.PageSize
	if end > len(dataset) {
		end = len(dataset)
	}

	out := make([]T, end-start)
	copy(out, dataset[start:end])
	return out
}
