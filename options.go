package castly

// DefaultDateLayout is the layout used for time parsing when no layout is specified.
const DefaultDateLayout = "2006-01-02 15:04:05.000"

// DefaultTagName is the struct tag consulted for field mapping information.
const DefaultTagName = "cast"

// Options contains configuration for a conversion registry.
type Options struct {
	// DateLayout specifies the layout for time parsing
	DateLayout string
	// TagName is the struct tag name to look for mapping information
	TagName string
	// CaseSensitive controls whether field/key matching is case sensitive
	CaseSensitive bool
	// IgnoreUnmapped when true skips source entries with no matching destination field,
	// otherwise an unmapped entry is an error
	IgnoreUnmapped bool
	// ClonePointerData if true, creates a clone of data pointed by pointers
	ClonePointerData bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		DateLayout:     DefaultDateLayout,
		TagName:        DefaultTagName,
		CaseSensitive:  false,
		IgnoreUnmapped: true,
	}
}
