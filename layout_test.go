package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func composeWithOpts(t *testing.T, opts ...datagrid.Option) *datagrid.Frame[int] {
	t.Helper()
	g := datagrid.New[int](&mockPlatform{}, rowCells{}, opts...)
	g.SetColumns(plainColumns())
	g.SetData(intRows(5))
	return g.Compose(datagrid.Vec2{X: 800, Y: 600})
}

func TestLayoutModeFromHeight(t *testing.T) {
	tests := []struct {
		name string
		opts []datagrid.Option
		want datagrid.LayoutMode
	}{
		{"no height", nil, datagrid.LayoutSingleBlock},
		{"zero height", []datagrid.Option{datagrid.WithHeight(0)}, datagrid.LayoutSingleBlock},
		{"negative height", []datagrid.Option{datagrid.WithHeight(-20)}, datagrid.LayoutSingleBlock},
		{"numeric height", []datagrid.Option{datagrid.WithHeight(120)}, datagrid.LayoutFixedHeaderSplit},
		{"float height", []datagrid.Option{datagrid.WithHeight(120.5)}, datagrid.LayoutFixedHeaderSplit},
		{"numeric string", []datagrid.Option{datagrid.WithHeight("120")}, datagrid.LayoutFixedHeaderSplit},
		{"non-numeric string", []datagrid.Option{datagrid.WithHeight("tall")}, datagrid.LayoutSingleBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := composeWithOpts(t, tt.opts...)
			if f.Mode != tt.want {
				t.Errorf("expected %v, got %v", tt.want, f.Mode)
			}
		})
	}
}

func TestSplitModeParsesHeight(t *testing.T) {
	f := composeWithOpts(t, datagrid.WithHeight("240"))
	if f.Height != 240 {
		t.Errorf("expected parsed height 240, got %v", f.Height)
	}
}

func TestSingleBlockBodyViewMatchesContent(t *testing.T) {
	g := datagrid.New[int](&mockPlatform{}, rowCells{})
	g.SetColumns(plainColumns())
	g.SetData(intRows(5))
	g.Compose(datagrid.Vec2{X: 800, Y: 600})

	// 5 rows at the default 28-unit row height; nothing to scroll
	// vertically in single-block mode.
	if g.Body().ClientHeight() != 140 {
		t.Errorf("expected body view height 140, got %v", g.Body().ClientHeight())
	}
	if g.Body().ScrollHeight() != 140 {
		t.Errorf("expected body content height 140, got %v", g.Body().ScrollHeight())
	}
}
