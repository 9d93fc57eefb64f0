package datagrid

// Option configures a grid.
type Option func(*options)

// options holds all grid configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for grid options.
//
// Example:
//
//	var OptCustomThing = datagrid.NewOptKey("customThing", defaultValue)
//	g := datagrid.New[Row](platform, cells, datagrid.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// GridSize selects row density.
type GridSize int

const (
	SizeDefault GridSize = iota
	SizeMedium
	SizeSmall
	SizeMini
)

// VerticalAlign controls how cell content sits within the row.
type VerticalAlign int

const (
	AlignMiddle VerticalAlign = iota
	AlignTop
	AlignBottom
)

var (
	// OptHeight is the configured body height: a number or a numeric
	// string. Anything else parses to 0, which means no fixed header.
	OptHeight = NewOptKey[any]("height", nil)

	OptWidth = NewOptKey[float32]("width", 0)

	// Styling flags. These influence only style selection, never the
	// layout algorithm.
	OptStriped       = NewOptKey("striped", false)
	OptBordered      = NewOptKey("bordered", false)
	OptSize          = NewOptKey("size", SizeDefault)
	OptVerticalAlign = NewOptKey("verticalAlign", AlignMiddle)

	OptEmptyText = NewOptKey("emptyText", "No data")
)

// =============================================================================
// Convenience Option Functions
// =============================================================================

// WithHeight sets the body height (pixels/cells, or a numeric string).
// Any height > 0 switches the grid into the fixed-header split layout.
func WithHeight(height any) Option { return WithOpt(OptHeight, height) }

// WithWidth sets the grid's outer width (0 = fill the given area).
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// Striped alternates row background colors.
func Striped() Option { return WithOpt(OptStriped, true) }

// Bordered draws inner column borders in addition to row separators.
func Bordered() Option { return WithOpt(OptBordered, true) }

// WithSize selects row density.
func WithSize(size GridSize) Option { return WithOpt(OptSize, size) }

// WithVerticalAlign sets cell vertical alignment.
func WithVerticalAlign(align VerticalAlign) Option { return WithOpt(OptVerticalAlign, align) }

// WithEmptyText sets the text shown when the current slice has no rows.
func WithEmptyText(text string) Option { return WithOpt(OptEmptyText, text) }
