package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func TestDrawListPool(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	dl.AddRect(0, 0, 100, 100, datagrid.ColorWhite)

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Errorf("expected 4 vertices and 6 indices for a rect, got %d/%d",
			len(dl.VtxBuffer), len(dl.IdxBuffer))
	}

	datagrid.ReleaseDrawList(dl)

	dl2 := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl2)
	if len(dl2.VtxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("acquired DrawList must be cleared")
	}
}

func TestDrawListTransparentSkipped(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, datagrid.ColorTransparent)
	dl.AddText(0, 0, "hi", datagrid.ColorTransparent, 1, 8, 16)
	dl.AddLine(0, 0, 10, 0, datagrid.ColorTransparent, 1)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent primitives must be skipped, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawListClipRectSplitsCommands(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, datagrid.ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(0, 0, 10, 10, datagrid.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[1].ClipRect; got != [4]float32{5, 5, 50, 50} {
		t.Errorf("expected clipped command rect {5 5 50 50}, got %v", got)
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount != 6 {
			t.Errorf("command %d: expected 6 elements, got %d", i, cmd.ElemCount)
		}
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 10, 10)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, datagrid.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Errorf("expected empty commands to be dropped, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawListTextureSplitsCommands(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, datagrid.ColorWhite)
	dl.SetTexture(7)
	dl.AddText(0, 0, "ab", datagrid.ColorWhite, 1, 8, 16)
	dl.SetTexture(0)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("unexpected texture batching: %d, %d",
			dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID)
	}
	// Two glyphs: 8 vertices, 12 indices.
	if dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("expected 12 elements for 2 glyphs, got %d", dl.CmdBuffer[1].ElemCount)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	for i := 0; i < b.N; i++ {
		dl.Clear()
		for j := 0; j < 100; j++ {
			dl.AddRect(float32(j), float32(j), 100, 20, datagrid.ColorWhite)
		}
		dl.Finalize()
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	for i := 0; i < b.N; i++ {
		dl.Clear()
		for j := 0; j < 50; j++ {
			dl.AddText(0, float32(j)*16, "The quick brown fox", datagrid.ColorWhite, 1, 8, 16)
		}
		dl.Finalize()
	}
}
