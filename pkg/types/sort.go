package types

// SortKey identifies the comparator applied to the display sequence.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByModified
	SortByKind
)

// Next cycles name -> size -> modified -> kind -> name.
func (k SortKey) Next() SortKey {
	if k == SortByKind {
		return SortByName
	}
	return k + 1
}

func (k SortKey) String() string {
	switch k {
	case SortBySize:
		return "size"
	case SortByModified:
		return "modified"
	case SortByKind:
		return "kind"
	default:
		return "name"
	}
}

// ParseSortKey maps a config string to a SortKey, defaulting to name.
func ParseSortKey(s string) SortKey {
	switch s {
	case "size":
		return SortBySize
	case "modified":
		return SortByModified
	case "kind":
		return SortByKind
	default:
		return SortByName
	}
}

// SortDirection is ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseSortDirection maps a config string to a direction, defaulting to asc.
func ParseSortDirection(s string) SortDirection {
	if s == "desc" {
		return Descending
	}
	return Ascending
}
