// Package browse holds the browsing core: view state (filter + sort +
// presentation mode), navigation history, clipboard and status summaries.
package browse

import (
	"sort"
	"strings"

	"skim/pkg/types"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ViewState owns the directory snapshot and derives the display sequence
// from it. Every input change recomputes from the snapshot; the previous
// output is never patched incrementally.
type ViewState struct {
	snapshot []types.Entry
	search   string
	sortKey  types.SortKey
	sortDir  types.SortDirection
	mode     types.ViewMode

	display  []types.Entry
	collator *collate.Collator
}

// NewViewState creates a ViewState with name-ascending sort and detail mode.
func NewViewState() *ViewState {
	return &ViewState{
		sortKey:  types.SortByName,
		sortDir:  types.Ascending,
		mode:     types.ViewDetail,
		display:  []types.Entry{},
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// SetDirectory replaces the snapshot atomically and recomputes the display
// sequence. The snapshot is expected to already have the hidden-file policy
// applied by the lister.
func (v *ViewState) SetDirectory(snapshot []types.Entry) {
	v.snapshot = snapshot
	v.recompute()
}

// SetSearch changes the search text. Filtering always restarts from the
// full snapshot, so search never compounds with its previous result.
func (v *ViewState) SetSearch(text string) {
	v.search = text
	v.recompute()
}

// SetSort changes the active comparator and direction.
func (v *ViewState) SetSort(key types.SortKey, dir types.SortDirection) {
	v.sortKey = key
	v.sortDir = dir
	v.recompute()
}

// SetPresentationMode records the rendering hint. Display content is
// unaffected.
func (v *ViewState) SetPresentationMode(mode types.ViewMode) {
	v.mode = mode
}

// Display returns the current display sequence.
func (v *ViewState) Display() []types.Entry { return v.display }

// Snapshot returns the unfiltered snapshot.
func (v *ViewState) Snapshot() []types.Entry { return v.snapshot }

func (v *ViewState) Search() string                    { return v.search }
func (v *ViewState) SortKey() types.SortKey            { return v.sortKey }
func (v *ViewState) SortDirection() types.SortDirection { return v.sortDir }
func (v *ViewState) Mode() types.ViewMode              { return v.mode }

// recompute derives display from snapshot: search filter, then sort.
func (v *ViewState) recompute() {
	filtered := make([]types.Entry, 0, len(v.snapshot))
	needle := strings.ToLower(v.search)
	for _, e := range v.snapshot {
		if needle == "" || strings.Contains(strings.ToLower(e.Name), needle) {
			filtered = append(filtered, e)
		}
	}
	v.sortEntries(filtered)
	v.display = filtered
}

// sortEntries sorts in place. Directories always precede files for every
// sort key; the comparator and direction apply within each group. Under a
// size sort directories compare equal, so their incoming (baseline) order
// is preserved by stability.
func (v *ViewState) sortEntries(entries []types.Entry) {
	less := v.less
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		cmp := less(a, b)
		if v.sortDir == types.Descending {
			return less(b, a)
		}
		return cmp
	})
}

func (v *ViewState) less(a, b types.Entry) bool {
	switch v.sortKey {
	case types.SortBySize:
		if a.IsDir || b.IsDir {
			return false // directories carry no size; keep incoming order
		}
		return a.Size < b.Size
	case types.SortByModified:
		return a.ModTime.Before(b.ModTime)
	case types.SortByKind:
		return strings.ToLower(a.Kind) < strings.ToLower(b.Kind)
	default:
		return v.collator.CompareString(a.Name, b.Name) < 0
	}
}
