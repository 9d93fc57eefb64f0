package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func composePages(pagination *datagrid.Pagination, rows []int) *datagrid.Frame[int] {
	g := datagrid.New[int](&mockPlatform{}, rowCells{})
	g.SetColumns(plainColumns())
	g.SetData(rows)
	g.SetPagination(pagination)
	return g.Compose(datagrid.Vec2{X: 800, Y: 600})
}

func TestPaginationDisabled(t *testing.T) {
	f := composePages(nil, intRows(25))

	if f.Page.Enabled {
		t.Error("nil pagination must disable paging")
	}
	if len(f.Rows) != 25 {
		t.Errorf("expected full dataset, got %d rows", len(f.Rows))
	}
	if f.TotalPages != 1 {
		t.Errorf("expected 1 page when disabled, got %d", f.TotalPages)
	}
}

func TestPaginationControlledValues(t *testing.T) {
	f := composePages(&datagrid.Pagination{Current: 2, PageSize: 10}, intRows(25))

	if f.Page.Current != 2 || f.Page.PageSize != 10 {
		t.Fatalf("expected resolved page 2/10, got %+v", f.Page)
	}
	if len(f.Rows) != 10 || f.Rows[0] != 11 || f.Rows[9] != 20 {
		t.Errorf("expected rows 11..20, got %v", f.Rows)
	}
	if f.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", f.TotalPages)
	}
}

func TestPaginationDefaultSeeds(t *testing.T) {
	f := composePages(&datagrid.Pagination{DefaultCurrent: 3, DefaultPageSize: 10}, intRows(25))

	if f.Page.Current != 3 || f.Page.PageSize != 10 {
		t.Fatalf("expected resolved page 3/10 from seeds, got %+v", f.Page)
	}
	if len(f.Rows) != 5 || f.Rows[0] != 21 {
		t.Errorf("expected the 5-row tail page, got %v", f.Rows)
	}
}

func TestPaginationPerFieldPriority(t *testing.T) {
	// Current is controlled, PageSize falls back to its seed.
	f := composePages(&datagrid.Pagination{Current: 2, DefaultPageSize: 5}, intRows(25))

	if f.Page.Current != 2 || f.Page.PageSize != 5 {
		t.Errorf("fields must resolve independently, got %+v", f.Page)
	}
	if len(f.Rows) != 5 || f.Rows[0] != 6 {
		t.Errorf("expected rows 6..10, got %v", f.Rows)
	}
}

func TestPaginationPagePastEnd(t *testing.T) {
	f := composePages(&datagrid.Pagination{Current: 9, PageSize: 10}, intRows(25))

	if len(f.Rows) != 0 {
		t.Errorf("page past the end must slice empty, got %d rows", len(f.Rows))
	}
	if !f.Empty {
		t.Error("an out-of-range page with no rows is the empty state")
	}
}

func TestPaginationDatasetFitsOnePage(t *testing.T) {
	f := composePages(&datagrid.Pagination{Current: 1, PageSize: 100}, intRows(25))

	if len(f.Rows) != 25 {
		t.Errorf("expected full dataset when it fits one page, got %d rows", len(f.Rows))
	}
	if f.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", f.TotalPages)
	}
}

func TestPaginationMissingValuesShowAll(t *testing.T) {
	// Enabled but neither source supplies current/pageSize.
	f := composePages(&datagrid.Pagination{}, intRows(25))

	if !f.Page.Enabled {
		t.Error("a non-nil configuration enables paging")
	}
	if len(f.Rows) != 25 {
		t.Errorf("no usable page values must show the full dataset, got %d rows", len(f.Rows))
	}
}

func TestSliceIsACopy(t *testing.T) {
	rows := intRows(25)
	g := datagrid.New[int](&mockPlatform{}, rowCells{})
	g.SetColumns(plainColumns())
	g.SetData(rows)
	g.SetPagination(&datagrid.Pagination{Current: 1, PageSize: 10})

	f := g.Compose(datagrid.Vec2{X: 800, Y: 600})
	rows[0] = -1

	if f.Rows[0] != 1 {
		t.Error("mutating the dataset must not change an already-produced slice")
	}

	f.Rows[1] = -2
	f2 := g.Compose(datagrid.Vec2{X: 800, Y: 600})
	if f2.Rows[1] != 2 {
		t.Error("mutating a produced slice must not leak into the dataset")
	}
}
