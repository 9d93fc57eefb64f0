package datagrid

// Style defines the visual appearance of grid elements. Styling flags on
// the grid (striped, bordered, size, vertical align) only pick values out
// of here; they never change how regions are laid out or scrolled.
type Style struct {
	// Text
	TextColor       uint32
	HeaderTextColor uint32 // 0 = use TextColor
	EmptyTextColor  uint32

	// Surfaces
	BgColor       uint32
	HeaderBgColor uint32
	RowBgAltColor uint32 // Striped rows
	HoveredColor  uint32
	BorderColor   uint32

	// Loading overlay
	OverlayColor     uint32
	OverlayTextColor uint32

	// Fixed-column edge shadows, driven by the affordance flags
	EdgeShadowColor uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32
	ScrollbarSize      float32

	// Pager
	PagerTextColor     uint32
	PagerActiveBgColor uint32
	PagerBgColor       uint32

	// Metrics
	FontScale    float32
	CharWidth    float32
	CharHeight   float32
	CellPadding  float32
	RowHeight    float32
	PagerHeight  float32
	PagerPadding float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:       ColorWhite,
		HeaderTextColor: 0,
		EmptyTextColor:  ColorGray,

		BgColor:       RGBA(18, 18, 20, 255),
		HeaderBgColor: RGBA(40, 40, 45, 255),
		RowBgAltColor: RGBA(28, 28, 32, 255),
		HoveredColor:  RGBA(50, 50, 58, 255),
		BorderColor:   RGBA(80, 80, 80, 255),

		OverlayColor:     RGBA(0, 0, 0, 160),
		OverlayTextColor: ColorLightGray,

		EdgeShadowColor: RGBA(0, 0, 0, 120),

		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(90, 90, 90, 255),
		ScrollbarSize:      12,

		PagerTextColor:     ColorLightGray,
		PagerActiveBgColor: RGBA(70, 70, 90, 255),
		PagerBgColor:       RGBA(30, 30, 34, 255),

		FontScale:    1,
		CharWidth:    8,
		CharHeight:   16,
		CellPadding:  8,
		RowHeight:    28,
		PagerHeight:  32,
		PagerPadding: 4,
	}
}

// LightStyle returns a light variant.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = ColorBlack
	s.EmptyTextColor = ColorDarkGray
	s.BgColor = RGBA(250, 250, 250, 255)
	s.HeaderBgColor = RGBA(235, 235, 238, 255)
	s.RowBgAltColor = RGBA(243, 243, 246, 255)
	s.HoveredColor = RGBA(228, 232, 240, 255)
	s.BorderColor = RGBA(200, 200, 200, 255)
	s.ScrollbarBgColor = RGBA(235, 235, 235, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.PagerTextColor = ColorDarkGray
	s.PagerBgColor = RGBA(240, 240, 242, 255)
	return s
}

// rowHeightFor maps the density flag to a row height.
func (s *Style) rowHeightFor(size GridSize) float32 {
	h := s.RowHeight
	switch size {
	case SizeMedium:
		h -= 4
	case SizeSmall:
		h -= 8
	case SizeMini:
		h -= 12
	}
	// A row never collapses below one line of text.
	return maxf(h, s.CharHeight)
}
