package datagrid

// FixedSide pins a column to one edge of the grid so it stays visible
// during horizontal scroll.
type FixedSide int

const (
	FixedNone FixedSide = iota
	FixedLeft
	FixedRight
)

// ColumnFlags control individual column behavior.
type ColumnFlags uint32

const (
	ColumnFlagsNone ColumnFlags = 0

	// Sizing
	ColumnFlagsWidthFixed   ColumnFlags = 1 << 0 // Fixed width column
	ColumnFlagsWidthStretch ColumnFlags = 1 << 1 // Stretch to fill available space
)

// Column defines one node of the column specification. Group columns
// carry Children and only contribute their leaves to the rendered grid.
// The grid never mutates a Column; it only reads and flattens the tree.
type Column struct {
	Key   string // Stable identifier, also the default cell accessor
	Title string
	Fixed FixedSide
	Flags ColumnFlags

	Width    float32 // Initial/fixed width (0 = auto from title)
	MinWidth float32 // Minimum width for stretch columns
	MaxWidth float32 // Maximum width for stretch columns (0 = unlimited)

	Children []Column // Non-empty makes this a group header

	// Runtime state (managed by the grid during compose)
	width float32 // Current computed width
}

// IsFixed returns true if the column is pinned to either edge.
func (c Column) IsFixed() bool {
	return c.Fixed == FixedLeft || c.Fixed == FixedRight
}

// ComputedWidth returns the width resolved during the last compose pass.
// Only meaningful on columns taken from a Frame.
func (c Column) ComputedWidth() float32 {
	return c.width
}

// FlattenColumns expands a possibly-nested column tree into the flat,
// render-ordered list of leaf columns. Group nodes are descended into and
// not emitted themselves. Document order is preserved. A parent's Fixed
// side is NOT propagated onto its leaves; a leaf is fixed only if its own
// Fixed field says so.
func FlattenColumns(tree []Column) []Column {
	// Already-flat specs are the common case; size for it.
	flat := make([]Column, 0, len(tree))
	return appendLeaves(flat, tree)
}

func appendLeaves(flat []Column, nodes []Column) []Column {
	for _, col := range nodes {
		if len(col.Children) > 0 {
			flat = appendLeaves(flat, col.Children)
			continue
		}
		flat = append(flat, col)
	}
	return flat
}

// hasFixedColumns reports whether any flattened leaf is pinned.
func hasFixedColumns(flat []Column) bool {
	for _, col := range flat {
		if col.IsFixed() {
			return true
		}
	}
	return false
}

// computeColumnWidths resolves the rendered width of each flattened
// column. Fixed-width columns take their configured width, auto columns
// take a width derived from their title, and the remaining space is
// distributed across stretch columns by weight with min/max clamping.
func computeColumnWidths(columns []Column, totalWidth float32, style *Style) []Column {
	result := make([]Column, len(columns))
	copy(result, columns)

	usedWidth := float32(0)
	stretchWeight := float32(0)

	for i := range result {
		col := &result[i]

		if col.Flags&ColumnFlagsWidthFixed != 0 && col.Width > 0 {
			col.width = col.Width
			usedWidth += col.width
		} else if col.Flags&ColumnFlagsWidthStretch != 0 {
			weight := col.Width
			if weight <= 0 {
				weight = 1
			}
			stretchWeight += weight
		} else {
			// Auto: size to the title plus cell padding.
			col.width = float32(len(col.Title))*style.CharWidth + style.CellPadding*2
			if col.Width > 0 && col.width < col.Width {
				col.width = col.Width
			}
			usedWidth += col.width
		}
	}

	if stretchWeight > 0 {
		remaining := maxf(0, totalWidth-usedWidth)
		for i := range result {
			col := &result[i]
			if col.Flags&ColumnFlagsWidthStretch == 0 {
				continue
			}
			weight := col.Width
			if weight <= 0 {
				weight = 1
			}
			col.width = remaining * (weight / stretchWeight)
			if col.MinWidth > 0 && col.width < col.MinWidth {
				col.width = col.MinWidth
			}
			if col.MaxWidth > 0 && col.width > col.MaxWidth {
				col.width = col.MaxWidth
			}
		}
	}

	return result
}

// columnsWidth sums the resolved widths of a flattened column list.
func columnsWidth(columns []Column) float32 {
	total := float32(0)
	for _, col := range columns {
		total += col.width
	}
	return total
}
