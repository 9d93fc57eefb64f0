package datagrid

import "strconv"

// LayoutMode selects how the grid splits into scrollable regions.
type LayoutMode int

const (
	// LayoutSingleBlock renders header and body in one shared scroll
	// container.
	LayoutSingleBlock LayoutMode = iota

	// LayoutFixedHeaderSplit renders the header in its own scroll region
	// so it stays visible while the body scrolls vertically. Selected
	// whenever a body height is configured.
	LayoutFixedHeaderSplit
)

// String returns the mode name for logging.
func (m LayoutMode) String() string {
	if m == LayoutFixedHeaderSplit {
		return "fixed-header-split"
	}
	return "single-block"
}

// parseHeight normalizes a configured body height. Heights may be given
// as a number (pixels / cells) or a numeric string; anything absent or
// non-numeric parses to 0.
func parseHeight(v any) float32 {
	switch h := v.(type) {
	case nil:
		return 0
	case float32:
		return maxf(0, h)
	case float64:
		return maxf(0, float32(h))
	case int:
		return maxf(0, float32(h))
	case string:
		f, err := strconv.ParseFloat(h, 32)
		if err != nil {
			return 0
		}
		return maxf(0, float32(f))
	default:
		return 0
	}
}

// layoutModeFor maps a parsed height to the layout mode: any height > 0
// selects the split header/body layout.
func layoutModeFor(height float32) LayoutMode {
	if height > 0 {
		return LayoutFixedHeaderSplit
	}
	return LayoutSingleBlock
}
