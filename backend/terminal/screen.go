// Package terminal provides a tcell backend for the datagrid package.
// One terminal cell is one layout unit, so pair it with CellStyle.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
)

// glyphAtlasTexture tags text quads in the draw list. The value only
// has to be nonzero and stable; there is no real texture behind it.
const glyphAtlasTexture uint32 = 1

// Screen adapts a tcell screen to the grid's Platform, input, and
// renderer contracts. Draw lists are interpreted rather than rasterized:
// opaque quads become cell backgrounds, glyph quads become runes, and
// translucent quads tint the background without erasing glyphs.
type Screen struct {
	screen tcell.Screen
	input  *datagrid.InputState
	events chan tcell.Event
	quit   chan struct{}
	closed bool

	mu           sync.Mutex
	resizeFns    map[int]func()
	nextResizeID int

	cells []cell
	w, h  int
}

type cell struct {
	ch    rune
	fg    tcell.Color
	bg    tcell.Color
	hasBg bool
}

// NewScreen initializes tcell with mouse reporting enabled and starts
// the event pump. Close must be called to restore the terminal.
func NewScreen() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	ts.EnableMouse()
	ts.Clear()

	s := &Screen{
		screen:    ts,
		input:     datagrid.NewInputState(),
		events:    make(chan tcell.Event, 64),
		quit:      make(chan struct{}),
		resizeFns: make(map[int]func()),
	}

	// tcell's PollEvent blocks, so pump it from its own goroutine and
	// drain non-blocking in PollInput.
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	return s, nil
}

// CellStyle returns a Style with cell-sized metrics for terminal
// rendering. Row separators are disabled because a one-cell line would
// land on the next row's text line.
func CellStyle() datagrid.Style {
	s := datagrid.DefaultStyle()
	s.FontScale = 1
	s.CharWidth = 1
	s.CharHeight = 1
	s.CellPadding = 1
	s.RowHeight = 1
	s.PagerHeight = 1
	s.PagerPadding = 0
	s.ScrollbarSize = 1
	s.BorderColor = datagrid.ColorTransparent
	return s
}

// FontTextureID returns the synthetic atlas tag for text quads.
func (s *Screen) FontTextureID() uint32 {
	return glyphAtlasTexture
}

// ShouldClose reports whether the user asked to quit (Esc, q, or
// Ctrl+C).
func (s *Screen) ShouldClose() bool {
	return s.closed
}

// Area returns the terminal size in cells.
func (s *Screen) Area() datagrid.Vec2 {
	w, h := s.screen.Size()
	return datagrid.Vec2{X: float32(w), Y: float32(h)}
}

// PollInput drains pending terminal events into the input state and
// returns it. Call once per frame before drawing.
func (s *Screen) PollInput() *datagrid.InputState {
	s.input.Reset()

	var wheelX, wheelY float32
	for {
		select {
		case ev := <-s.events:
			switch tev := ev.(type) {
			case *tcell.EventMouse:
				x, y := tev.Position()
				s.input.SetMousePos(float32(x), float32(y))

				btns := tev.Buttons()
				s.input.SetMouseButton(datagrid.MouseButtonLeft, btns&tcell.Button1 != 0)
				s.input.SetMouseButton(datagrid.MouseButtonRight, btns&tcell.Button2 != 0)
				s.input.SetMouseButton(datagrid.MouseButtonMiddle, btns&tcell.Button3 != 0)

				if btns&tcell.WheelUp != 0 {
					wheelY++
				}
				if btns&tcell.WheelDown != 0 {
					wheelY--
				}
				if btns&tcell.WheelLeft != 0 {
					wheelX--
				}
				if btns&tcell.WheelRight != 0 {
					wheelX++
				}
			case *tcell.EventResize:
				s.screen.Sync()
				s.fireResize()
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC ||
					(tev.Key() == tcell.KeyRune && tev.Rune() == 'q') {
					s.closed = true
				}
			}
		default:
			if wheelX != 0 || wheelY != 0 {
				s.input.SetMouseWheel(wheelX, wheelY)
			}
			return s.input
		}
	}
}

// Render interprets a finalized DrawList into the cell buffer and
// flushes it to the terminal.
func (s *Screen) Render(dl *datagrid.DrawList) error {
	w, h := s.screen.Size()
	s.resizeBuffer(w, h)

	if dl != nil {
		for ci, cmd := range dl.CmdBuffer {
			if cmd.ElemCount == 0 {
				continue
			}
			vtxEnd := len(dl.VtxBuffer)
			if ci+1 < len(dl.CmdBuffer) {
				vtxEnd = int(dl.CmdBuffer[ci+1].VertexOffset)
			}
			verts := dl.VtxBuffer[cmd.VertexOffset:vtxEnd]

			// Primitives are appended as one quad per four vertices.
			quads := int(cmd.ElemCount) / 6
			for q := 0; q < quads && (q+1)*4 <= len(verts); q++ {
				s.drawQuad(verts[q*4:q*4+4], cmd)
			}
		}
	}

	s.flush()
	return nil
}

// Resize satisfies the renderer contract. The cell buffer tracks the
// live terminal size each Render, so nothing is cached here.
func (s *Screen) Resize(width, height int) {}

// Close stops the event pump and restores the terminal.
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

// NewScrollProbe reports the one-cell gutter the grid's scrollbars
// occupy. Terminals have no native scrollbar box to measure.
func (s *Screen) NewScrollProbe(width, height float32) datagrid.ScrollProbe {
	client := width - 1
	if client < 0 {
		client = 0
	}
	return cellProbe{outer: width, client: client}
}

// OnResize registers fn to run when the terminal is resized. The
// returned cancel removes the registration.
func (s *Screen) OnResize(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextResizeID
	s.nextResizeID++
	s.resizeFns[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.resizeFns, id)
		s.mu.Unlock()
	}
}

func (s *Screen) fireResize() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.resizeFns))
	for _, fn := range s.resizeFns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *Screen) resizeBuffer(w, h int) {
	if w != s.w || h != s.h {
		s.w, s.h = w, h
		s.cells = make([]cell, w*h)
	}
	for i := range s.cells {
		s.cells[i] = cell{ch: ' '}
	}
}

func (s *Screen) drawQuad(v []datagrid.Vertex, cmd datagrid.DrawCmd) {
	_, _, _, alpha := datagrid.UnpackRGBA(v[0].Color)
	if alpha == 0 {
		return
	}
	color := rgbColor(v[0].Color)

	minX, minY := v[0].Pos[0], v[0].Pos[1]
	maxX, maxY := minX, minY
	for _, vert := range v[1:] {
		if vert.Pos[0] < minX {
			minX = vert.Pos[0]
		}
		if vert.Pos[0] > maxX {
			maxX = vert.Pos[0]
		}
		if vert.Pos[1] < minY {
			minY = vert.Pos[1]
		}
		if vert.Pos[1] > maxY {
			maxY = vert.Pos[1]
		}
	}

	// Apply the command's clip rect before converting to cells.
	if minX < cmd.ClipRect[0] {
		minX = cmd.ClipRect[0]
	}
	if minY < cmd.ClipRect[1] {
		minY = cmd.ClipRect[1]
	}
	if maxX > cmd.ClipRect[2] {
		maxX = cmd.ClipRect[2]
	}
	if maxY > cmd.ClipRect[3] {
		maxY = cmd.ClipRect[3]
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	if cmd.TextureID == glyphAtlasTexture {
		ch := glyphRune(v[0].TexCoord)
		s.setGlyph(int(v[0].Pos[0]+0.5), int(v[0].Pos[1]+0.5), ch, color)
		return
	}

	x0, y0 := int(minX), int(minY)
	x1, y1 := int(maxX+0.999), int(maxY+0.999)

	// Translucent fills (loading overlay, edge shadows) tint the cell
	// background and leave any glyph in place.
	opaque := alpha == 255
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.setBackground(x, y, color, opaque)
		}
	}
}

func (s *Screen) setGlyph(x, y int, ch rune, fg tcell.Color) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	c := &s.cells[y*s.w+x]
	c.ch = ch
	c.fg = fg
}

func (s *Screen) setBackground(x, y int, bg tcell.Color, opaque bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	c := &s.cells[y*s.w+x]
	c.bg = bg
	c.hasBg = true
	if opaque {
		c.ch = ' '
	}
}

func (s *Screen) flush() {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := s.cells[y*s.w+x]
			style := tcell.StyleDefault.Foreground(c.fg)
			if c.hasBg {
				style = style.Background(c.bg)
			}
			s.screen.SetContent(x, y, c.ch, nil, style)
		}
	}
	s.screen.Show()
}

// glyphRune recovers the character a text quad samples from the atlas:
// glyphs are 8x8 in a 16-column grid starting at ASCII 32.
func glyphRune(uv [2]float32) rune {
	col := int(uv[0]*128/8 + 0.5)
	row := int(uv[1]*48/8 + 0.5)
	ch := rune(row*16 + col + 32)
	if ch < 32 || ch > 127 {
		return ' '
	}
	return ch
}

func rgbColor(c uint32) tcell.Color {
	r, g, b, _ := datagrid.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellProbe is a ScrollProbe with fixed cell measurements.
type cellProbe struct {
	outer, client float32
}

func (p cellProbe) OuterWidth() float32  { return p.outer }
func (p cellProbe) ClientWidth() float32 { return p.client }
func (p cellProbe) Close()               {}
