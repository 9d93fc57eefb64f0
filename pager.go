package datagrid

import "strconv"

// pagerState tracks the pagination control's transient interaction
// state between frames.
type pagerState struct {
	hovered int // button index under the mouse (-1 = none)
}

// maxPagerButtons caps how many numbered page buttons are shown; the
// window slides to keep the current page visible.
const maxPagerButtons = 7

// pagerSizes are the page sizes the built-in size button cycles through.
var pagerSizes = [...]int{10, 20, 50, 100}

type pagerButtonKind int

const (
	pagerPrev pagerButtonKind = iota
	pagerNext
	pagerPage
	pagerSize
)

type pagerButton struct {
	rect     Rect
	label    string
	kind     pagerButtonKind
	page     int // Target page for pagerPage / pagerPrev / pagerNext
	active   bool
	disabled bool
}

// pagerWindow returns the inclusive range of page numbers to show.
func pagerWindow(current, total int) (first, last int) {
	if total <= maxPagerButtons {
		return 1, total
	}
	half := maxPagerButtons / 2
	first = current - half
	if first < 1 {
		first = 1
	}
	last = first + maxPagerButtons - 1
	if last > total {
		last = total
		first = last - maxPagerButtons + 1
	}
	return first, last
}

// pagerButtons lays out the control: prev, a window of numbered pages,
// next, and the page-size cycle button.
func (g *Grid[T]) pagerButtons(area Rect, f *Frame[T]) []pagerButton {
	current := f.Page.Current
	if current < 1 {
		current = 1
	}
	total := f.TotalPages

	pad := g.style.PagerPadding
	btnH := area.H - pad*2
	charW := g.style.CharWidth * g.style.FontScale

	buttons := make([]pagerButton, 0, maxPagerButtons+3)
	x := area.X + pad

	add := func(b pagerButton) {
		w := float32(len(b.label))*charW + g.style.CellPadding*2
		if w < btnH {
			w = btnH
		}
		b.rect = Rect{X: x, Y: area.Y + pad, W: w, H: btnH}
		x += w + pad
		buttons = append(buttons, b)
	}

	add(pagerButton{label: "<", kind: pagerPrev, page: current - 1, disabled: current <= 1})

	first, last := pagerWindow(current, total)
	for p := first; p <= last; p++ {
		add(pagerButton{label: strconv.Itoa(p), kind: pagerPage, page: p, active: p == current})
	}

	add(pagerButton{label: ">", kind: pagerNext, page: current + 1, disabled: current >= total})

	size := f.Page.PageSize
	if size > 0 {
		add(pagerButton{label: strconv.Itoa(size) + "/page", kind: pagerSize})
	}

	return buttons
}

// drawPager renders the built-in pagination control and translates its
// clicks into current-change / page-size-change events. The grid itself
// only consumes those events; it never reaches into the control's state.
func (g *Grid[T]) drawPager(dl *DrawList, input *InputState, area Rect, f *Frame[T]) {
	dl.AddRect(area.X, area.Y, area.W, area.H, g.style.PagerBgColor)

	buttons := g.pagerButtons(area, f)

	hovered := -1
	if input != nil {
		mouse := Vec2{X: input.MouseX, Y: input.MouseY}
		for i, b := range buttons {
			if !b.disabled && b.rect.Contains(mouse) {
				hovered = i
				break
			}
		}

		if hovered >= 0 && input.MouseClicked(MouseButtonLeft) {
			g.pagerClick(buttons[hovered], f)
		}
	}
	g.pager.hovered = hovered

	for i, b := range buttons {
		bg := uint32(ColorTransparent)
		if b.active {
			bg = g.style.PagerActiveBgColor
		} else if i == hovered {
			bg = g.style.HoveredColor
		}
		dl.AddRect(b.rect.X, b.rect.Y, b.rect.W, b.rect.H, bg)

		color := g.style.PagerTextColor
		if b.disabled {
			color = g.style.EmptyTextColor
		}
		charW := g.style.CharWidth * g.style.FontScale
		tx := b.rect.X + (b.rect.W-float32(len(b.label))*charW)/2
		ty := b.rect.Y + (b.rect.H-g.style.CharHeight*g.style.FontScale)/2
		g.text(dl, tx, ty, b.label, color)
	}
}

// pagerClick emits the control's change events.
func (g *Grid[T]) pagerClick(b pagerButton, f *Frame[T]) {
	switch b.kind {
	case pagerPrev, pagerNext, pagerPage:
		if b.page >= 1 && b.page <= f.TotalPages && b.page != f.Page.Current {
			g.handleCurrentChange(b.page)
		}
	case pagerSize:
		g.handlePageSizeChange(nextPagerSize(f.Page.PageSize))
	}
}

// nextPagerSize cycles to the next built-in page size.
func nextPagerSize(current int) int {
	for i, s := range pagerSizes {
		if s == current {
			return pagerSizes[(i+1)%len(pagerSizes)]
		}
	}
	return pagerSizes[0]
}
