// Example renders a paginated data grid with pinned columns in a GLFW
// window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

const (
	windowWidth  = 960
	windowHeight = 600
	windowTitle  = "datagrid example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type employee struct {
	ID     int
	Name   string
	Team   string
	City   string
	Title  string
	Salary int
}

type employeeCells struct{}

func (employeeCells) RowKey(e employee) string {
	return strconv.Itoa(e.ID)
}

func (employeeCells) CellText(e employee, col datagrid.Column) string {
	switch col.Key {
	case "id":
		return strconv.Itoa(e.ID)
	case "name":
		return e.Name
	case "team":
		return e.Team
	case "city":
		return e.City
	case "title":
		return e.Title
	case "salary":
		return strconv.Itoa(e.Salary)
	default:
		return ""
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	win, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer win.Close()

	columns := []datagrid.Column{
		{Key: "id", Title: "ID", Fixed: datagrid.FixedLeft, Width: 60, Flags: datagrid.ColumnFlagsWidthFixed},
		{Key: "name", Title: "Name", Width: 160, Flags: datagrid.ColumnFlagsWidthFixed},
		{Title: "Organization", Children: []datagrid.Column{
			{Key: "team", Title: "Team", Width: 140, Flags: datagrid.ColumnFlagsWidthFixed},
			{Key: "city", Title: "City", Width: 140, Flags: datagrid.ColumnFlagsWidthFixed},
		}},
		{Key: "title", Title: "Title", Width: 220, Flags: datagrid.ColumnFlagsWidthFixed},
		{Key: "salary", Title: "Salary", Fixed: datagrid.FixedRight, Width: 100, Flags: datagrid.ColumnFlagsWidthFixed},
	}

	g := datagrid.New[employee](win, employeeCells{},
		datagrid.WithHeight(440),
		datagrid.Striped(),
	)
	g.SetColumns(columns)
	g.SetData(makeEmployees(312))
	g.SetPagination(&datagrid.Pagination{DefaultCurrent: 1, DefaultPageSize: 20})
	g.SetCallbacks(datagrid.Callbacks[employee]{
		PageChange: func(page datagrid.PageInfo, rows []employee) {
			fmt.Printf("page %d (%d rows)\n", page.Current, len(rows))
		},
		ScrollX: func(ev datagrid.ScrollEvent) {
			fmt.Printf("scrolled to x=%.0f\n", ev.Left)
		},
		Row: datagrid.RowCallbacks[employee]{
			Click: func(e employee, index int) {
				fmt.Printf("clicked %s (row %d)\n", e.Name, index)
			},
			DoubleClick: func(e employee, index int) {
				win.SetClipboard(fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%d",
					e.ID, e.Name, e.Team, e.City, e.Title, e.Salary))
				fmt.Printf("copied %s to clipboard\n", e.Name)
			},
		},
	})

	g.Mount()
	defer g.Unmount()

	for !win.ShouldClose() {
		input := win.PollInput()

		dl := datagrid.AcquireDrawList()
		g.Draw(dl, input, datagrid.Rect{X: 0, Y: 0, W: win.Area().X, H: win.Area().Y})
		dl.Finalize()

		if err := win.Render(dl); err != nil {
			datagrid.ReleaseDrawList(dl)
			return err
		}
		datagrid.ReleaseDrawList(dl)
	}

	return nil
}

var (
	teams  = []string{"Platform", "Payments", "Search", "Mobile", "Infra", "Data"}
	cities = []string{"Berlin", "Lisbon", "Austin", "Tokyo", "Toronto"}
	titles = []string{"Engineer", "Senior Engineer", "Staff Engineer", "Manager", "Designer"}
)

func makeEmployees(n int) []employee {
	rows := make([]employee, n)
	for i := range rows {
		rows[i] = employee{
			ID:     i + 1,
			Name:   fmt.Sprintf("Employee %03d", i+1),
			Team:   teams[i%len(teams)],
			City:   cities[i%len(cities)],
			Title:  titles[i%len(titles)],
			Salary: 52000 + (i%17)*3100,
		}
	}
	return rows
}
