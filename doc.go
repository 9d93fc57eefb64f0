/*
Package datagrid implements a data-grid rendering engine: tabular data
with optional sticky headers, fixed left/right columns, client-side
pagination, and synchronized scrolling across decoupled header/body
regions.

# Overview

The grid is a retained component the host drives once per frame. Each
pass it flattens the column tree, picks a layout mode from the
configured height, reconciles controlled and uncontrolled pagination,
slices the dataset, and renders into a DrawList that a backend
(backend/opengl, backend/terminal) displays. Scroll coordination (the
header/body scrollLeft mirror, the can-scroll affordance flags, and the
horizontal/vertical event classification) lives in the Coordinator and
is throttled so fast scrolling never floods the host.

# Quick Start

	win, _ := opengl.NewWindow(800, 600, "grid")
	g := datagrid.New[Person](win, cells,
	    datagrid.WithHeight(400),
	    datagrid.Striped(),
	)
	g.SetColumns(columns)
	g.SetData(people)
	g.SetPagination(&datagrid.Pagination{DefaultCurrent: 1, DefaultPageSize: 20})
	g.Mount()
	defer g.Unmount()

	for !win.ShouldClose() {
	    input := win.PollInput()
	    dl := datagrid.AcquireDrawList()
	    g.Draw(dl, input, datagrid.Rect{W: win.Area().X, H: win.Area().Y})
	    dl.Finalize()
	    win.Render(dl)
	    datagrid.ReleaseDrawList(dl)
	}

# Controlled vs. Uncontrolled Pagination

Setting Pagination.Current / Pagination.PageSize makes the host
authoritative for that field every frame. Leaving them zero lets the
built-in pagination control manage its own state, reported back through
Callbacks.PageChange. The resolution priority is always: controlled
value, then the internally tracked default from the last change event,
then the caller-supplied Default seed.

# Layout Modes

A configured height of 0 (or an absent/non-numeric height) renders the
grid as one scrollable block. Any height > 0 splits the header into its
own scroll region; the Coordinator then mirrors the body's horizontal
offset into it, and the header gets trailing padding equal to the
measured scrollbar thickness so its columns stay pixel-aligned with the
body's.
*/
package datagrid
