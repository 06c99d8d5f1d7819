package components

import (
	"fmt"
	"strings"

	"skim/internal/tui/styles"
	"skim/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// FileList renders the display list in one of three presentation modes.
// It holds no filesystem state; the model feeds it already filtered and
// sorted entries.
type FileList struct {
	entries  []types.Entry
	selected map[string]bool
	cursor   int
	mode     types.ViewMode
	width    int
	height   int
	styles   *styles.Styles
}

func NewFileList(st *styles.Styles) *FileList {
	return &FileList{
		selected: make(map[string]bool),
		mode:     types.ViewDetail,
		width:    80,
		height:   24,
		styles:   st,
	}
}

// SetEntries replaces the rendered entries and clamps the cursor.
func (fl *FileList) SetEntries(entries []types.Entry) {
	fl.entries = entries
	if fl.cursor >= len(entries) {
		fl.cursor = len(entries) - 1
	}
	if fl.cursor < 0 {
		fl.cursor = 0
	}
}

func (fl *FileList) SetMode(mode types.ViewMode) {
	fl.mode = mode
}

func (fl *FileList) Mode() types.ViewMode {
	return fl.mode
}

func (fl *FileList) SetSize(width, height int) {
	fl.width = width
	fl.height = height
}

func (fl *FileList) MoveCursor(delta int) {
	pos := fl.cursor + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(fl.entries)-1 {
		pos = len(fl.entries) - 1
	}
	if pos >= 0 {
		fl.cursor = pos
	}
}

func (fl *FileList) Cursor() int {
	return fl.cursor
}

func (fl *FileList) SetCursor(pos int) {
	if pos >= 0 && pos < len(fl.entries) {
		fl.cursor = pos
	}
}

// Current returns the entry under the cursor, or nil for an empty list.
func (fl *FileList) Current() *types.Entry {
	if fl.cursor >= 0 && fl.cursor < len(fl.entries) {
		return &fl.entries[fl.cursor]
	}
	return nil
}

func (fl *FileList) Entries() []types.Entry {
	return fl.entries
}

// ToggleSelected flips selection for the entry under the cursor.
func (fl *FileList) ToggleSelected() {
	cur := fl.Current()
	if cur == nil {
		return
	}
	if fl.selected[cur.Path] {
		delete(fl.selected, cur.Path)
	} else {
		fl.selected[cur.Path] = true
	}
}

func (fl *FileList) ClearSelection() {
	fl.selected = make(map[string]bool)
}

// SelectedPaths returns the selected paths in display order.
func (fl *FileList) SelectedPaths() []string {
	var paths []string
	for _, e := range fl.entries {
		if fl.selected[e.Path] {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

func (fl *FileList) SelectionCount() int {
	return len(fl.SelectedPaths())
}

func (fl *FileList) View() string {
	if len(fl.entries) == 0 {
		return fl.styles.Muted.Render("This folder is empty")
	}

	switch fl.mode {
	case types.ViewGrid:
		return fl.viewGrid()
	case types.ViewCompact:
		return fl.viewCompact()
	default:
		return fl.viewDetail()
	}
}

func (fl *FileList) viewDetail() string {
	var s strings.Builder

	nameWidth := fl.width - 40
	if nameWidth < 20 {
		nameWidth = 20
	}

	for i, e := range fl.entries {
		size := "—"
		if !e.IsDir {
			size = humanize.Bytes(uint64(e.Size))
		}
		line := fmt.Sprintf("%-*s  %-14s  %8s  %s",
			nameWidth, truncate(e.Name, nameWidth),
			truncate(e.Kind, 14),
			size,
			e.ModTime.Format("2006-01-02 15:04"))

		s.WriteString(fl.renderLine(i, e, line))
		s.WriteString("\n")
	}

	return s.String()
}

const gridCellWidth = 22

func (fl *FileList) gridColumns() int {
	columns := fl.width / gridCellWidth
	if columns < 1 {
		columns = 1
	}
	return columns
}

// CursorLine reports which rendered line the cursor sits on, for scrolling.
func (fl *FileList) CursorLine() int {
	if fl.mode == types.ViewGrid {
		return fl.cursor / fl.gridColumns()
	}
	return fl.cursor
}

func (fl *FileList) viewGrid() string {
	cellWidth := gridCellWidth
	columns := fl.gridColumns()

	var s strings.Builder
	for i, e := range fl.entries {
		cell := truncate(e.Name, cellWidth-2)
		s.WriteString(fl.renderLine(i, e, fmt.Sprintf("%-*s", cellWidth-2, cell)))
		if (i+1)%columns == 0 || i == len(fl.entries)-1 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return s.String()
}

func (fl *FileList) viewCompact() string {
	var s strings.Builder
	for i, e := range fl.entries {
		s.WriteString(fl.renderLine(i, e, e.Name))
		s.WriteString("\n")
	}
	return s.String()
}

func (fl *FileList) renderLine(i int, e types.Entry, text string) string {
	style := fl.styles.File
	if e.IsDir {
		style = fl.styles.Directory
	}
	if fl.selected[e.Path] {
		style = fl.styles.Selected
	}

	cursor := "  "
	if i == fl.cursor {
		cursor = fl.styles.Cursor.Render("> ")
	}

	marker := " "
	if fl.selected[e.Path] {
		marker = "*"
	}

	return cursor + marker + " " + style.Render(text)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:1])
	}
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}
