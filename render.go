package datagrid

import "time"

// Renderer is the interface backends implement to display a frame's
// draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// fontTextureProvider is implemented by platforms that also own the
// glyph atlas their renderer samples from. Text primitives are tagged
// with the atlas texture so the backend can tell them apart from solid
// fills.
type fontTextureProvider interface {
	FontTextureID() uint32
}

// wheelScrollStep is how many rows one wheel notch moves the body.
const wheelScrollStep = 3

// Draw composes a frame, routes input, and renders the grid into dl
// within area. It returns the composed frame so the host can inspect the
// derived state it was drawn from.
func (g *Grid[T]) Draw(dl *DrawList, input *InputState, area Rect) *Frame[T] {
	if g.fontTex == 0 {
		if fp, ok := g.platform.(fontTextureProvider); ok {
			g.fontTex = fp.FontTextureID()
		}
	}

	f := g.Compose(Vec2{X: area.W, Y: area.H})
	rowH := g.style.rowHeightFor(GetOpt(g.opts, OptSize))

	headerRect := Rect{X: area.X, Y: area.Y, W: f.Width, H: rowH}
	bodyRect := Rect{X: area.X, Y: area.Y + rowH, W: f.Width, H: g.body.ClientHeight()}

	if input != nil {
		g.routeInput(input, bodyRect, rowH, f)
		// Re-read the affordance after input may have scrolled.
		f.Affordance = g.coordForMode(f.Mode).Affordance()
	}

	g.drawHeader(dl, headerRect, f)
	g.drawBody(dl, bodyRect, rowH, f)
	g.drawEdgeShadows(dl, headerRect, bodyRect, f)
	g.drawScrollbars(dl, bodyRect, f)

	pagerTop := bodyRect.Y + bodyRect.H
	if f.Page.Enabled {
		g.drawPager(dl, input, Rect{X: area.X, Y: pagerTop, W: f.Width, H: g.style.PagerHeight}, f)
	}

	if f.Loading {
		g.drawOverlay(dl, Rect{X: area.X, Y: area.Y, W: f.Width, H: rowH + bodyRect.H}, "Loading...")
	} else if f.Empty {
		g.drawEmpty(dl, bodyRect)
	}

	return f
}

// routeInput applies wheel scrolling to the body region and dispatches
// the row interaction catalog.
func (g *Grid[T]) routeInput(input *InputState, bodyRect Rect, rowH float32, f *Frame[T]) {
	mouse := Vec2{X: input.MouseX, Y: input.MouseY}
	inBody := bodyRect.Contains(mouse)
	coord := g.coordForMode(f.Mode)

	if inBody && (input.MouseWheelY != 0 || input.MouseWheelX != 0) {
		if input.MouseWheelY != 0 && f.Mode == LayoutFixedHeaderSplit {
			g.body.SetScrollTop(g.body.ScrollTop() - input.MouseWheelY*rowH*wheelScrollStep)
		}
		if input.MouseWheelX != 0 {
			g.body.SetScrollLeft(g.body.ScrollLeft() - input.MouseWheelX*rowH)
		}
		coord.OnBodyScroll()
		coord.OnScroll()
	}

	// Row hover / click catalog
	row := -1
	if inBody && !f.Empty && !f.Loading {
		idx := int((mouse.Y - bodyRect.Y + g.body.ScrollTop()) / rowH)
		if idx >= 0 && idx < len(f.Rows) {
			row = idx
		}
	}

	if row != g.hoverRow {
		g.emitRowEvent(RowEventHoverLeave, f.Rows, g.hoverRow)
		g.emitRowEvent(RowEventHoverEnter, f.Rows, row)
		g.hoverRow = row
	}

	if row >= 0 && input.MouseClicked(MouseButtonLeft) {
		now := time.Now()
		if row == g.clickRow && now.Sub(g.lastClick) <= doubleClickWindow {
			g.emitRowEvent(RowEventDoubleClick, f.Rows, row)
			g.clickRow = -1
		} else {
			g.emitRowEvent(RowEventClick, f.Rows, row)
			g.clickRow = row
		}
		g.lastClick = now
	}
	if row >= 0 && input.MouseClicked(MouseButtonRight) {
		g.emitRowEvent(RowEventContextMenu, f.Rows, row)
	}
}

// headerScrollLeft is the horizontal offset the header renders with: its
// own mirrored region in split mode, the shared body offset otherwise.
func (g *Grid[T]) headerScrollLeft(f *Frame[T]) float32 {
	if f.Mode == LayoutFixedHeaderSplit {
		return g.header.ScrollLeft()
	}
	return g.body.ScrollLeft()
}

func (g *Grid[T]) drawHeader(dl *DrawList, rect Rect, f *Frame[T]) {
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, g.style.HeaderBgColor)

	textColor := g.style.HeaderTextColor
	if textColor == 0 {
		textColor = g.style.TextColor
	}

	dl.PushClipRect(rect.X, rect.Y, rect.X+rect.W-f.HeaderPadRight, rect.Y+rect.H)
	scrollLeft := g.headerScrollLeft(f)

	x := rect.X - scrollLeft
	for i, col := range f.Columns {
		if !col.IsFixed() {
			g.drawCellText(dl, col.Title, x, rect.Y, col.width, textColor)
		}
		if GetOpt(g.opts, OptBordered) && i < len(f.Columns)-1 {
			dl.AddLine(x+col.width, rect.Y, x+col.width, rect.Y+rect.H, g.style.BorderColor, 1)
		}
		x += col.width
	}

	// Pinned headers overdraw the scrolled ones.
	g.eachFixedColumn(f, rect, func(col Column, pinX float32) {
		dl.AddRect(pinX, rect.Y, col.width, rect.H, g.style.HeaderBgColor)
		g.drawCellText(dl, col.Title, pinX, rect.Y, col.width, textColor)
	})

	dl.PopClipRect()
	dl.AddLine(rect.X, rect.Y+rect.H, rect.X+rect.W, rect.Y+rect.H, g.style.BorderColor, 1)
}

func (g *Grid[T]) drawBody(dl *DrawList, rect Rect, rowH float32, f *Frame[T]) {
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, g.style.BgColor)
	if len(f.Rows) == 0 {
		return
	}

	dl.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	defer dl.PopClipRect()

	striped := GetOpt(g.opts, OptStriped)
	bordered := GetOpt(g.opts, OptBordered)

	top := g.body.ScrollTop()
	left := g.body.ScrollLeft()

	// Draw only rows intersecting the viewport.
	first, last := visibleRowRange(len(f.Rows), rowH, rect.H, top)
	for i := first; i < last; i++ {
		y := rect.Y + float32(i)*rowH - top

		if i == g.hoverRow {
			dl.AddRect(rect.X, y, rect.W, rowH, g.style.HoveredColor)
		} else if striped && i%2 == 1 {
			dl.AddRect(rect.X, y, rect.W, rowH, g.style.RowBgAltColor)
		}

		x := rect.X - left
		for _, col := range f.Columns {
			if !col.IsFixed() {
				g.drawCellText(dl, g.cells.CellText(f.Rows[i], col), x, y, col.width, g.style.TextColor)
			}
			if bordered {
				dl.AddLine(x+col.width, y, x+col.width, y+rowH, g.style.BorderColor, 1)
			}
			x += col.width
		}

		g.eachFixedColumn(f, rect, func(col Column, pinX float32) {
			bg := g.style.BgColor
			if i == g.hoverRow {
				bg = g.style.HoveredColor
			} else if striped && i%2 == 1 {
				bg = g.style.RowBgAltColor
			}
			dl.AddRect(pinX, y, col.width, rowH, bg)
			g.drawCellText(dl, g.cells.CellText(f.Rows[i], col), pinX, y, col.width, g.style.TextColor)
		})

		dl.AddLine(rect.X, y+rowH, rect.X+rect.W, y+rowH, g.style.BorderColor, 1)
	}
}

// eachFixedColumn walks the pinned columns with their pinned x position:
// fixed-left columns stack from the left edge, fixed-right from the
// right, both in render order.
func (g *Grid[T]) eachFixedColumn(f *Frame[T], rect Rect, fn func(col Column, pinX float32)) {
	if !f.HasFixed {
		return
	}

	leftX := rect.X
	for _, col := range f.Columns {
		if col.Fixed == FixedLeft {
			fn(col, leftX)
			leftX += col.width
		}
	}

	rightX := rect.X + rect.W
	for i := len(f.Columns) - 1; i >= 0; i-- {
		col := f.Columns[i]
		if col.Fixed == FixedRight {
			rightX -= col.width
			fn(col, rightX)
		}
	}
}

// drawEdgeShadows marks the pinned-column boundaries when further
// horizontal scroll is possible in that direction.
func (g *Grid[T]) drawEdgeShadows(dl *DrawList, headerRect, bodyRect Rect, f *Frame[T]) {
	if !f.HasFixed {
		return
	}

	top := headerRect.Y
	height := headerRect.H + bodyRect.H

	if f.Affordance.CanScrollLeft {
		x := bodyRect.X
		for _, col := range f.Columns {
			if col.Fixed == FixedLeft {
				x += col.width
			}
		}
		dl.AddRect(x, top, 4, height, g.style.EdgeShadowColor)
	}
	if f.Affordance.CanScrollRight {
		x := bodyRect.X + bodyRect.W
		for _, col := range f.Columns {
			if col.Fixed == FixedRight {
				x -= col.width
			}
		}
		dl.AddRect(x-4, top, 4, height, g.style.EdgeShadowColor)
	}
}

func (g *Grid[T]) drawScrollbars(dl *DrawList, bodyRect Rect, f *Frame[T]) {
	sb := g.style.ScrollbarSize
	contentH, viewH := g.body.ScrollHeight(), g.body.ClientHeight()
	contentW, viewW := g.body.ScrollWidth(), g.body.ClientWidth()

	// Vertical, split mode only (single block scrolls with the host)
	if f.Mode == LayoutFixedHeaderSplit && contentH > viewH {
		ratio := viewH / contentH
		thumbH := maxf(20, bodyRect.H*ratio)
		maxScroll := contentH - viewH
		thumbY := bodyRect.Y
		if maxScroll > 0 {
			thumbY += (g.body.ScrollTop() / maxScroll) * (bodyRect.H - thumbH)
		}
		x := bodyRect.X + bodyRect.W - sb
		dl.AddRect(x, bodyRect.Y, sb, bodyRect.H, g.style.ScrollbarBgColor)
		dl.AddRect(x, thumbY, sb, thumbH, g.style.ScrollbarGrabColor)
	}

	// Horizontal, whenever content overflows
	if contentW > viewW {
		ratio := viewW / contentW
		thumbW := maxf(20, bodyRect.W*ratio)
		maxScroll := contentW - viewW
		thumbX := bodyRect.X
		if maxScroll > 0 {
			thumbX += (g.body.ScrollLeft() / maxScroll) * (bodyRect.W - thumbW)
		}
		y := bodyRect.Y + bodyRect.H - sb
		dl.AddRect(bodyRect.X, y, bodyRect.W, sb, g.style.ScrollbarBgColor)
		dl.AddRect(thumbX, y, thumbW, sb, g.style.ScrollbarGrabColor)
	}
}

// text draws a string with the font atlas bound around it.
func (g *Grid[T]) text(dl *DrawList, x, y float32, s string, color uint32) {
	dl.SetTexture(g.fontTex)
	dl.AddText(x, y, s, color, g.style.FontScale, g.style.CharWidth, g.style.CharHeight)
	dl.SetTexture(0)
}

func (g *Grid[T]) drawEmpty(dl *DrawList, bodyRect Rect) {
	text := GetOpt(g.opts, OptEmptyText)
	tw := float32(len(text)) * g.style.CharWidth * g.style.FontScale
	x := bodyRect.X + (bodyRect.W-tw)/2
	y := bodyRect.Y + (bodyRect.H-g.style.CharHeight)/2
	g.text(dl, x, maxf(bodyRect.Y, y), text, g.style.EmptyTextColor)
}

// drawOverlay dims the table without removing it from the layout tree.
func (g *Grid[T]) drawOverlay(dl *DrawList, rect Rect, text string) {
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, g.style.OverlayColor)
	tw := float32(len(text)) * g.style.CharWidth * g.style.FontScale
	x := rect.X + (rect.W-tw)/2
	y := rect.Y + (rect.H-g.style.CharHeight)/2
	g.text(dl, x, y, text, g.style.OverlayTextColor)
}

// drawCellText draws cell content vertically centered per the configured
// alignment, truncated with an ellipsis to the column width.
func (g *Grid[T]) drawCellText(dl *DrawList, text string, x, y, colWidth float32, color uint32) {
	rowH := g.style.rowHeightFor(GetOpt(g.opts, OptSize))
	charH := g.style.CharHeight * g.style.FontScale

	var textY float32
	switch GetOpt(g.opts, OptVerticalAlign) {
	case AlignTop:
		textY = y + 2
	case AlignBottom:
		textY = y + rowH - charH - 2
	default:
		textY = y + (rowH-charH)/2
	}

	maxWidth := colWidth - g.style.CellPadding*2
	display := truncateText(text, maxWidth, g.style.CharWidth*g.style.FontScale)
	g.text(dl, x+g.style.CellPadding, textY, display, color)
}

// truncateText shortens text to fit maxWidth, appending "..".
func truncateText(text string, maxWidth, charWidth float32) string {
	if charWidth <= 0 || float32(len(text))*charWidth <= maxWidth {
		return text
	}

	const ellipsis = ".."
	runes := []rune(text)
	for len(runes) > 0 {
		if float32(len(runes)+len(ellipsis))*charWidth <= maxWidth {
			return string(runes) + ellipsis
		}
		runes = runes[:len(runes)-1]
	}
	return ellipsis
}

// visibleRowRange returns the half-open index window of rows that
// intersect the viewport. This is draw clipping, not data windowing: the
// slicer still decides which rows exist this pass.
func visibleRowRange(total int, rowH, viewH, scrollTop float32) (first, last int) {
	if total == 0 || rowH <= 0 {
		return 0, 0
	}

	first = int(scrollTop / rowH)
	if first < 0 {
		first = 0
	}
	last = first + int(viewH/rowH) + 2
	if viewH <= 0 {
		last = total
	}

	if first > total {
		first = total
	}
	if last > total {
		last = total
	}
	return first, last
}
