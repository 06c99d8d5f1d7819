package browse

import (
	"fmt"

	"skim/pkg/types"

	"github.com/dustin/go-humanize"
)

// Status summarizes the display sequence for the status bar.
type Status struct {
	Items      int
	TotalBytes int64
	Selected   int
}

// ComputeStatus counts entries and sums non-directory sizes.
func ComputeStatus(entries []types.Entry, selected int) Status {
	s := Status{Items: len(entries), Selected: selected}
	for _, e := range entries {
		if !e.IsDir {
			s.TotalBytes += e.Size
		}
	}
	return s
}

// Summary renders the status line. A non-empty selection takes precedence
// over the item count.
func (s Status) Summary() string {
	if s.Selected > 0 {
		return fmt.Sprintf("%d selected", s.Selected)
	}
	noun := "items"
	if s.Items == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s · %s", s.Items, noun, humanize.Bytes(uint64(s.TotalBytes)))
}
