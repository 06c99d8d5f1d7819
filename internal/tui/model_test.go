package tui_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"skim/internal/config"
	"skim/internal/tui"
	"skim/internal/tui/messages"
	"skim/pkg/testutils"
	"skim/pkg/types"

	aassert "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*tui.Model, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.New()
	cfg.General.StartDir = dir

	m, err := tui.New(cfg)
	require.NoError(t, err)
	return m, dir
}

func scanMsg(dir string, entries ...types.Entry) messages.ScanCompleteMsg {
	return messages.ScanCompleteMsg{Token: 0, Dir: dir, Entries: entries}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *tui.Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func sampleScan(dir string) messages.ScanCompleteMsg {
	now := time.Now()
	return scanMsg(dir,
		types.Entry{Path: filepath.Join(dir, "b.txt"), Name: "b.txt", Size: 10, Kind: "TXT file", ModTime: now},
		types.Entry{Path: filepath.Join(dir, "a.txt"), Name: "a.txt", Size: 20, Kind: "TXT file", ModTime: now},
		types.Entry{Path: filepath.Join(dir, "Photos"), Name: "Photos", IsDir: true, Kind: "Folder", ModTime: now},
	)
}

func listedNames(m *tui.Model) []string {
	var names []string
	for _, e := range m.FileList().Entries() {
		names = append(names, e.Name)
	}
	return names
}

func TestScanCompletePopulatesDisplay(t *testing.T) {
	m, dir := newTestModel(t)

	m.Update(sampleScan(dir))

	assert.Equal(t, []string{"Photos", "a.txt", "b.txt"}, listedNames(m))
}

func TestStaleScanIsDropped(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	stale := sampleScan(dir)
	stale.Token = 99
	stale.Entries = nil
	m.Update(stale)

	assert.Len(t, m.FileList().Entries(), 3, "stale results must not replace the display")
}

func TestCursorMovement(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, "j", "j")
	aassert.Equal(t, 2, m.FileList().Cursor())

	press(m, "k")
	aassert.Equal(t, 1, m.FileList().Cursor())

	press(m, "k", "k", "k")
	aassert.Equal(t, 0, m.FileList().Cursor())
}

func TestSpaceSelectsAndAdvances(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, " ")
	assert.Equal(t, []string{filepath.Join(dir, "Photos")}, m.FileList().SelectedPaths())
	assert.Equal(t, 1, m.FileList().Cursor())
}

func TestSortKeysCycle(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, "s")
	assert.Equal(t, types.SortBySize, m.ViewState().SortKey())

	press(m, "S")
	assert.Equal(t, types.Descending, m.ViewState().SortDirection())
	assert.Equal(t, []string{"Photos", "a.txt", "b.txt"},
		listedNames(m), "directories stay first under size descending")
}

func TestViewModeCycle(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))
	before := listedNames(m)

	press(m, "v")
	assert.Equal(t, types.ViewGrid, m.FileList().Mode())
	assert.Equal(t, before, listedNames(m), "presentation mode never changes ordering")
}

func TestOpenDirectoryClearsSearch(t *testing.T) {
	m, dir := newTestModel(t)
	sub := filepath.Join(dir, "Photos")
	require.NoError(t, os.Mkdir(sub, 0755))

	m.Update(sampleScan(dir))
	press(m, "/", "p", "enter")
	require.Equal(t, "p", m.ViewState().Search())
	require.Equal(t, []string{"Photos"}, listedNames(m))

	press(m, "enter")

	assert.Equal(t, sub, m.Navigator().Current())
	assert.Equal(t, "", m.ViewState().Search(), "navigation resets the filter")
}

func TestSearchNarrowsLive(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, "/", "a")
	assert.Equal(t, []string{"a.txt"}, listedNames(m))

	press(m, "esc")
	assert.Equal(t, []string{"Photos", "a.txt", "b.txt"}, listedNames(m),
		"cancelling the prompt restores the full listing")
}

func TestYankAndClipboard(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, "j", "y")
	aassert.Equal(t, []string{filepath.Join(dir, "a.txt")}, m.Clipboard().Paths())

	press(m, "x")
	aassert.True(t, m.Clipboard().Mode().String() == "cut")
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	press(m, "d")
	out := testutils.StripANSI(m.View())
	assert.Contains(t, out, "Move 1 item to trash? (y/n)")

	press(m, "n")
	out = testutils.StripANSI(m.View())
	assert.Contains(t, out, "delete cancelled")
}

func TestOpCompleteReportsFirstError(t *testing.T) {
	m, dir := newTestModel(t)
	m.Update(sampleScan(dir))

	m.Update(messages.OpCompleteMsg{Verb: "copied", Results: []types.OpResult{
		{Source: "a", Err: nil},
		{Source: "b", Err: os.ErrPermission},
	}})

	out := testutils.StripANSI(m.View())
	assert.Contains(t, out, "permission denied")
}
