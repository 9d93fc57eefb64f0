// Command gen renders the grid in its documented states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type account struct {
	ID      int
	Name    string
	Region  string
	Plan    string
	Balance int
}

type accountCells struct{}

func (accountCells) RowKey(a account) string { return fmt.Sprintf("acct-%d", a.ID) }

func (accountCells) CellText(a account, col datagrid.Column) string {
	switch col.Key {
	case "id":
		return fmt.Sprintf("%d", a.ID)
	case "name":
		return a.Name
	case "region":
		return a.Region
	case "plan":
		return a.Plan
	case "balance":
		return fmt.Sprintf("$%d", a.Balance)
	default:
		return ""
	}
}

// screenshot defines a single grid state to capture.
type screenshot struct {
	name   string
	width  int
	height int
	build  func(p datagrid.Platform) *datagrid.Grid[account]
	frames int // extra frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range buildScreenshots() {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nScreenshots written to %s/\n", outDir)
	return nil
}

// capturePlatform exposes the renderer's font atlas to the grid. Probe
// and resize support are not needed for offscreen captures.
type capturePlatform struct {
	renderer *opengl.Renderer
}

func (p *capturePlatform) NewScrollProbe(w, h float32) datagrid.ScrollProbe { return nil }
func (p *capturePlatform) OnResize(fn func()) (cancel func())              { return func() {} }
func (p *capturePlatform) FontTextureID() uint32                           { return p.renderer.FontTextureID() }

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. Resizing the window would not
	// work: GLFW processes resizes asynchronously, causing framebuffer and
	// scissor mismatches. The hidden window stays at 800x600, larger than
	// every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh grid per screenshot so no state leaks between captures.
	grid := s.build(&capturePlatform{renderer: renderer})

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	area := datagrid.Rect{W: float32(s.width), H: float32(s.height)}
	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := datagrid.AcquireDrawList()
		grid.Draw(dl, &datagrid.InputState{}, area)
		dl.Finalize()
		err := renderer.Render(dl)
		datagrid.ReleaseDrawList(dl)
		if err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left).
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func sampleColumns() []datagrid.Column {
	return []datagrid.Column{
		{Key: "id", Title: "ID", Fixed: datagrid.FixedLeft, Flags: datagrid.ColumnFlagsWidthFixed, Width: 64},
		{Key: "name", Title: "Name", Flags: datagrid.ColumnFlagsWidthStretch, MinWidth: 120},
		{Title: "Account", Children: []datagrid.Column{
			{Key: "region", Title: "Region"},
			{Key: "plan", Title: "Plan"},
		}},
		{Key: "balance", Title: "Balance", Fixed: datagrid.FixedRight, Flags: datagrid.ColumnFlagsWidthFixed, Width: 96},
	}
}

func sampleAccounts(n int) []account {
	regions := []string{"us-east", "us-west", "eu-central", "ap-south"}
	plans := []string{"free", "startup", "business"}
	out := make([]account, n)
	for i := range out {
		out[i] = account{
			ID:      i + 1,
			Name:    fmt.Sprintf("Account %03d", i+1),
			Region:  regions[i%len(regions)],
			Plan:    plans[i%len(plans)],
			Balance: 250 + i*37,
		}
	}
	return out
}

// buildScreenshots returns one entry per documented grid state.
func buildScreenshots() []screenshot {
	newGrid := func(p datagrid.Platform, opts ...datagrid.Option) *datagrid.Grid[account] {
		g := datagrid.New[account](p, accountCells{}, opts...)
		g.SetColumns(sampleColumns())
		return g
	}

	return []screenshot{
		{
			name: "grid_single_block", width: 640, height: 320,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p)
				g.SetData(sampleAccounts(8))
				return g
			},
		},
		{
			name: "grid_split_striped", width: 640, height: 400,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p, datagrid.WithHeight(300), datagrid.Striped())
				g.SetData(sampleAccounts(40))
				return g
			},
		},
		{
			name: "grid_paged", width: 640, height: 400,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p, datagrid.WithHeight(280), datagrid.Striped())
				g.SetData(sampleAccounts(120))
				g.SetPagination(&datagrid.Pagination{Current: 3, PageSize: 10})
				return g
			},
		},
		{
			name: "grid_loading", width: 480, height: 260,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p)
				g.SetData(sampleAccounts(6))
				g.SetLoading(true)
				return g
			},
		},
		{
			name: "grid_empty", width: 480, height: 260,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p, datagrid.WithEmptyText("No accounts yet"))
				return g
			},
		},
		{
			name: "grid_compact", width: 640, height: 300,
			build: func(p datagrid.Platform) *datagrid.Grid[account] {
				g := newGrid(p, datagrid.WithSize(datagrid.SizeSmall))
				g.SetData(sampleAccounts(10))
				return g
			},
		},
	}
}
