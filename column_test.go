package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func TestFlattenColumnsDocumentOrder(t *testing.T) {
	tree := []datagrid.Column{
		{Key: "a"},
		{Title: "Group", Children: []datagrid.Column{
			{Key: "b"},
			{Title: "Nested", Children: []datagrid.Column{
				{Key: "c"},
			}},
			{Key: "d"},
		}},
		{Key: "e"},
	}

	flat := datagrid.FlattenColumns(tree)

	want := []string{"a", "b", "c", "d", "e"}
	if len(flat) != len(want) {
		t.Fatalf("expected %d leaves, got %d", len(want), len(flat))
	}
	for i, key := range want {
		if flat[i].Key != key {
			t.Errorf("leaf %d: expected %q, got %q", i, key, flat[i].Key)
		}
	}
}

func TestFlattenColumnsGroupFixedNotInherited(t *testing.T) {
	tree := []datagrid.Column{
		{Title: "Pinned Group", Fixed: datagrid.FixedLeft, Children: []datagrid.Column{
			{Key: "plain"},
			{Key: "pinned", Fixed: datagrid.FixedRight},
		}},
	}

	flat := datagrid.FlattenColumns(tree)

	if len(flat) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(flat))
	}
	if flat[0].IsFixed() {
		t.Error("leaf must not inherit the group's Fixed side")
	}
	if flat[1].Fixed != datagrid.FixedRight {
		t.Error("leaf's own Fixed side must survive flattening")
	}
}

func TestFlattenColumnsEmpty(t *testing.T) {
	if flat := datagrid.FlattenColumns(nil); len(flat) != 0 {
		t.Errorf("expected no leaves, got %d", len(flat))
	}
}

func TestComputeColumnWidthsViaCompose(t *testing.T) {
	g := datagrid.New[int](&mockPlatform{}, rowCells{})
	g.SetColumns([]datagrid.Column{
		{Key: "fixed", Title: "F", Width: 100, Flags: datagrid.ColumnFlagsWidthFixed},
		{Key: "stretch", Title: "S", Flags: datagrid.ColumnFlagsWidthStretch},
		{Key: "auto", Title: "CC"},
	})
	g.SetData(intRows(3))

	f := g.Compose(datagrid.Vec2{X: 500, Y: 300})

	if w := f.Columns[0].ComputedWidth(); w != 100 {
		t.Errorf("fixed column: expected 100, got %v", w)
	}
	// Auto sizes to title: 2 chars * 8 + 2 * 8 padding.
	if w := f.Columns[2].ComputedWidth(); w != 32 {
		t.Errorf("auto column: expected 32, got %v", w)
	}
	// Stretch takes the remainder.
	if w := f.Columns[1].ComputedWidth(); w != 368 {
		t.Errorf("stretch column: expected 368, got %v", w)
	}
}

func TestStretchColumnMinMaxClamp(t *testing.T) {
	g := datagrid.New[int](&mockPlatform{}, rowCells{})
	g.SetColumns([]datagrid.Column{
		{Key: "a", Title: "A", Width: 100, Flags: datagrid.ColumnFlagsWidthFixed},
		{Key: "b", Title: "B", Flags: datagrid.ColumnFlagsWidthStretch, MaxWidth: 50},
		{Key: "c", Title: "C", Flags: datagrid.ColumnFlagsWidthStretch, MinWidth: 400},
	})
	g.SetData(intRows(3))

	f := g.Compose(datagrid.Vec2{X: 600, Y: 300})

	if w := f.Columns[1].ComputedWidth(); w != 50 {
		t.Errorf("max clamp: expected 50, got %v", w)
	}
	if w := f.Columns[2].ComputedWidth(); w != 400 {
		t.Errorf("min clamp: expected 400, got %v", w)
	}
}
