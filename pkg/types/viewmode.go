package types

// ViewMode selects how the display sequence is rendered. It is purely a
// rendering hint and never changes which entries are shown.
type ViewMode int

const (
	// ViewDetail renders one row per entry with size, kind and date columns
	ViewDetail ViewMode = iota
	// ViewGrid renders entries in a multi-column grid
	ViewGrid
	// ViewCompact renders a dense single-line-per-entry list
	ViewCompact
)

// Next cycles detail -> grid -> compact -> detail.
func (v ViewMode) Next() ViewMode {
	switch v {
	case ViewDetail:
		return ViewGrid
	case ViewGrid:
		return ViewCompact
	default:
		return ViewDetail
	}
}

func (v ViewMode) String() string {
	switch v {
	case ViewGrid:
		return "grid"
	case ViewCompact:
		return "compact"
	default:
		return "detail"
	}
}

// ParseViewMode maps a config string to a ViewMode, defaulting to detail.
func ParseViewMode(s string) ViewMode {
	switch s {
	case "grid":
		return ViewGrid
	case "compact":
		return ViewCompact
	default:
		return ViewDetail
	}
}
