// Package tui implements the interactive file manager on top of Bubble Tea.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skim/internal/browse"
	"skim/internal/config"
	"skim/internal/fs"
	"skim/internal/log"
	"skim/internal/tui/components"
	"skim/internal/tui/messages"
	"skim/internal/tui/styles"
	"skim/internal/watch"
	"skim/pkg/types"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptRename
	promptNewFolder
	promptConfirmDelete
)

type Model struct {
	cfg    *config.Config
	styles *styles.Styles

	nav      *browse.Navigator
	view     *browse.ViewState
	loader   *browse.Loader
	executor *fs.Executor
	clip     browse.Clipboard
	watcher  *watch.Watcher

	fileList  *components.FileList
	statusBar *components.StatusBar
	prompt    *components.Prompt
	viewport  viewport.Model

	// Which prompt is open, and what a confirmed delete would remove
	promptMode    promptKind
	pendingDelete []string

	// Monotonic navigation token; scan results carrying an older token
	// are dropped
	token int

	// Name to put the cursor on after a refresh of the same directory
	restoreName string

	showHidden bool
	width      int
	height     int
}

// New builds the model from configuration. The starting directory is the
// configured one, falling back to the working directory.
func New(cfg *config.Config) (*Model, error) {
	start := cfg.General.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if !fs.DirExists(start) {
		return nil, fmt.Errorf("start directory does not exist: %s", start)
	}

	st := styles.FromConfig(cfg)
	lister := fs.NewLister(cfg.IgnoreGlobs()...)

	view := browse.NewViewState()
	view.SetSort(types.ParseSortKey(cfg.View.Sort), types.ParseSortDirection(cfg.View.Order))
	view.SetPresentationMode(types.ParseViewMode(cfg.View.Mode))

	fileList := components.NewFileList(st)
	fileList.SetMode(view.Mode())

	watcher, err := watch.New()
	if err != nil {
		// Browsing still works without live refresh
		log.LogWithFields(log.F("error", err)).Warn("directory watching unavailable")
		watcher = nil
	}

	return &Model{
		cfg:        cfg,
		styles:     st,
		nav:        browse.NewNavigator(start),
		view:       view,
		loader:     browse.NewLoader(lister),
		executor:   fs.NewExecutor(),
		watcher:    watcher,
		fileList:   fileList,
		statusBar:  components.NewStatusBar(st),
		prompt:     components.NewPrompt(st),
		viewport:   viewport.New(80, 20),
		showHidden: cfg.General.ShowHidden,
		width:      80,
		height:     24,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startScan()}
	if m.watcher != nil {
		if err := m.watcher.Start(); err == nil {
			cmds = append(cmds, m.nextWatchEvent())
		}
	}
	return tea.Batch(cmds...)
}

// startScan begins an asynchronous read of the current directory. Each call
// supersedes the previous one.
func (m *Model) startScan() tea.Cmd {
	m.token++
	m.statusBar.SetLoading(true)
	ch := m.loader.Start(m.token, m.nav.Current(), m.showHidden)
	return tea.Batch(
		func() tea.Msg {
			res, ok := <-ch
			if !ok {
				return nil
			}
			return messages.ScanCompleteMsg{Token: res.Token, Dir: res.Dir, Entries: res.Entries}
		},
		m.statusBar.Tick(),
	)
}

func (m *Model) nextWatchEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return messages.WatchEventMsg{Event: ev}
	}
}

// refresh re-reads the current directory keeping the cursor on its entry.
func (m *Model) refresh() tea.Cmd {
	if cur := m.fileList.Current(); cur != nil {
		m.restoreName = cur.Name
	}
	return m.startScan()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case messages.ScanCompleteMsg:
		return m.handleScanComplete(msg)

	case messages.OpCompleteMsg:
		return m.handleOpComplete(msg)

	case messages.WatchEventMsg:
		log.LogWithFields(
			log.F("path", msg.Event.Path),
			log.F("op", msg.Event.Op.String()),
		).Debug("directory changed externally")
		return m, tea.Batch(m.refresh(), m.nextWatchEvent())

	case messages.ErrorMsg:
		m.statusBar.SetMessage(m.styles.Error.Render(msg.Err.Error()))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.statusBar.Update(msg)
}

func (m *Model) handleScanComplete(msg messages.ScanCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Token != m.token {
		log.LogWithFields(log.F("directory", msg.Dir)).Debug("dropping stale directory read")
		return m, nil
	}

	m.statusBar.SetLoading(false)
	m.view.SetDirectory(msg.Entries)
	m.fileList.SetEntries(m.view.Display())

	if m.restoreName != "" {
		for i, e := range m.fileList.Entries() {
			if e.Name == m.restoreName {
				m.fileList.SetCursor(i)
				break
			}
		}
		m.restoreName = ""
	}

	m.updateSummary()

	if m.watcher != nil {
		if err := m.watcher.SetDirectory(msg.Dir); err != nil {
			log.LogWithFields(log.F("error", err)).Warn("failed to rebase directory watch")
		}
	}
	return m, nil
}

func (m *Model) handleOpComplete(msg messages.OpCompleteMsg) (tea.Model, tea.Cmd) {
	failed := 0
	var firstErr error
	for _, r := range msg.Results {
		if !r.OK() {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
		}
	}

	if failed > 0 {
		m.statusBar.SetMessage(m.styles.Error.Render(firstErr.Error()))
	} else {
		noun := "items"
		if len(msg.Results) == 1 {
			noun = "item"
		}
		m.statusBar.SetMessage(fmt.Sprintf("%s %d %s", msg.Verb, len(msg.Results), noun))
	}

	return m, m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.promptMode == promptConfirmDelete {
		return m.handleConfirmDelete(msg)
	}
	if m.prompt.Active() {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.loader.Stop()
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit

	case "j", "down":
		m.fileList.MoveCursor(1)
	case "k", "up":
		m.fileList.MoveCursor(-1)
	case "g", "home":
		m.fileList.SetCursor(0)
	case "G", "end":
		m.fileList.SetCursor(len(m.fileList.Entries()) - 1)

	case "enter", "l", "right":
		return m.openCurrent()
	case "h", "left", "backspace":
		if m.nav.Back() {
			return m, m.navigated()
		}
	case "L":
		if m.nav.Forward() {
			return m, m.navigated()
		}
	case "u":
		if m.nav.Up() {
			return m, m.navigated()
		}

	case " ":
		m.fileList.ToggleSelected()
		m.fileList.MoveCursor(1)
		m.updateSummary()
	case "esc":
		if m.view.Search() != "" {
			m.view.SetSearch("")
			m.fileList.SetEntries(m.view.Display())
		} else {
			m.fileList.ClearSelection()
		}
		m.updateSummary()

	case "/":
		m.promptMode = promptSearch
		return m, m.prompt.Start("search:", m.view.Search())

	case "s":
		m.view.SetSort(m.view.SortKey().Next(), m.view.SortDirection())
		m.applyView()
	case "S":
		m.view.SetSort(m.view.SortKey(), m.view.SortDirection().Toggle())
		m.applyView()
	case "v":
		m.view.SetPresentationMode(m.view.Mode().Next())
		m.fileList.SetMode(m.view.Mode())
	case ".":
		m.showHidden = !m.showHidden
		return m, m.refresh()
	case "R":
		return m, m.refresh()

	case "y":
		m.yank(browse.ClipCopy)
	case "x":
		m.yank(browse.ClipCut)
	case "p":
		return m.paste()

	case "r":
		if cur := m.fileList.Current(); cur != nil {
			m.promptMode = promptRename
			return m, m.prompt.Start("rename:", cur.Name)
		}
	case "n":
		m.promptMode = promptNewFolder
		return m, m.prompt.Start("new folder:", "")
	case "d":
		return m.requestDelete()
	}

	return m, nil
}

// navigated handles state shared by every successful navigation: the filter
// is cleared, the selection dropped and a fresh scan started.
func (m *Model) navigated() tea.Cmd {
	m.view.SetSearch("")
	m.fileList.ClearSelection()
	m.fileList.SetCursor(0)
	m.restoreName = ""
	m.statusBar.ClearMessage()
	return m.startScan()
}

func (m *Model) openCurrent() (tea.Model, tea.Cmd) {
	cur := m.fileList.Current()
	if cur == nil {
		return m, nil
	}
	if !cur.IsDir {
		m.statusBar.SetMessage(fmt.Sprintf("%s is not a folder", cur.Name))
		return m, nil
	}
	if m.nav.Navigate(cur.Path, true) {
		return m, m.navigated()
	}
	m.statusBar.SetMessage(m.styles.Error.Render(fmt.Sprintf("cannot open %s", cur.Name)))
	return m, nil
}

// yank loads the clipboard from the selection, or the cursor entry when
// nothing is selected.
func (m *Model) yank(mode browse.ClipMode) {
	paths := m.fileList.SelectedPaths()
	if len(paths) == 0 {
		if cur := m.fileList.Current(); cur != nil {
			paths = []string{cur.Path}
		}
	}
	if len(paths) == 0 {
		return
	}
	m.clip.Set(paths, mode)

	verb := "copy"
	if mode == browse.ClipCut {
		verb = "cut"
	}
	noun := "items"
	if len(paths) == 1 {
		noun = "item"
	}
	m.statusBar.SetMessage(fmt.Sprintf("%d %s marked for %s", len(paths), noun, verb))
}

func (m *Model) paste() (tea.Model, tea.Cmd) {
	if m.clip.Empty() {
		m.statusBar.SetMessage("clipboard is empty")
		return m, nil
	}

	paths := m.clip.Paths()
	dest := m.nav.Current()
	mode := m.clip.Mode()
	if mode == browse.ClipCut {
		// A cut pastes once; pasting again copies
		m.clip.Clear()
	}

	return m, func() tea.Msg {
		if mode == browse.ClipCut {
			return messages.OpCompleteMsg{Verb: "moved", Results: m.executor.Move(paths, dest)}
		}
		return messages.OpCompleteMsg{Verb: "copied", Results: m.executor.Copy(paths, dest)}
	}
}

func (m *Model) requestDelete() (tea.Model, tea.Cmd) {
	paths := m.fileList.SelectedPaths()
	if len(paths) == 0 {
		if cur := m.fileList.Current(); cur != nil {
			paths = []string{cur.Path}
		}
	}
	if len(paths) == 0 {
		return m, nil
	}

	if !m.cfg.General.ConfirmDelete {
		return m, m.deleteCmd(paths)
	}

	m.pendingDelete = paths
	m.promptMode = promptConfirmDelete
	return m, nil
}

func (m *Model) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	paths := m.pendingDelete
	m.pendingDelete = nil
	m.promptMode = promptNone

	switch msg.String() {
	case "y", "Y", "enter":
		return m, m.deleteCmd(paths)
	default:
		m.statusBar.SetMessage("delete cancelled")
		return m, nil
	}
}

func (m *Model) deleteCmd(paths []string) tea.Cmd {
	m.fileList.ClearSelection()
	return func() tea.Msg {
		return messages.OpCompleteMsg{Verb: "trashed", Results: m.executor.Delete(paths)}
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.promptMode == promptSearch {
			m.view.SetSearch("")
			m.fileList.SetEntries(m.view.Display())
			m.updateSummary()
		}
		m.prompt.Stop()
		m.promptMode = promptNone
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		mode := m.promptMode
		m.prompt.Stop()
		m.promptMode = promptNone
		return m.commitPrompt(mode, value)
	}

	cmd := m.prompt.Update(msg)
	if m.promptMode == promptSearch {
		// Search narrows as the user types
		m.view.SetSearch(m.prompt.Value())
		m.fileList.SetEntries(m.view.Display())
		m.updateSummary()
	}
	return m, cmd
}

func (m *Model) commitPrompt(mode promptKind, value string) (tea.Model, tea.Cmd) {
	switch mode {
	case promptSearch:
		m.view.SetSearch(value)
		m.fileList.SetEntries(m.view.Display())
		m.updateSummary()
		return m, nil

	case promptRename:
		cur := m.fileList.Current()
		if cur == nil {
			return m, nil
		}
		source := cur.Path
		m.restoreName = value
		return m, func() tea.Msg {
			return messages.OpCompleteMsg{Verb: "renamed", Results: []types.OpResult{m.executor.Rename(source, value)}}
		}

	case promptNewFolder:
		dest := m.nav.Current()
		m.restoreName = value
		return m, func() tea.Msg {
			return messages.OpCompleteMsg{Verb: "created", Results: []types.OpResult{m.executor.CreateFolder(dest, value)}}
		}
	}
	return m, nil
}

// applyView re-renders after a sort change and keeps the cursor on its entry.
func (m *Model) applyView() {
	var name string
	if cur := m.fileList.Current(); cur != nil {
		name = cur.Name
	}
	m.fileList.SetEntries(m.view.Display())
	for i, e := range m.fileList.Entries() {
		if e.Name == name {
			m.fileList.SetCursor(i)
			break
		}
	}
}

func (m *Model) updateSummary() {
	status := browse.ComputeStatus(m.fileList.Entries(), m.fileList.SelectionCount())
	m.statusBar.SetText(status.Summary())
}

// View implements tea.Model.
func (m *Model) View() string {
	var s strings.Builder

	path := m.nav.Current()
	indicators := fmt.Sprintf("[%s %s] [%s]", m.view.SortKey(), m.view.SortDirection(), m.view.Mode())
	if m.view.Search() != "" {
		indicators += fmt.Sprintf(" [/%s]", m.view.Search())
	}
	gap := m.width - lipgloss.Width(path) - lipgloss.Width(indicators) - 1
	if gap < 1 {
		gap = 1
	}
	s.WriteString(m.styles.Title.Render(path))
	s.WriteString(strings.Repeat(" ", gap))
	s.WriteString(m.styles.Muted.Render(indicators))
	s.WriteString("\n\n")

	m.syncViewport()
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.promptMode == promptConfirmDelete {
		noun := "items"
		if len(m.pendingDelete) == 1 {
			noun = "item"
		}
		s.WriteString(m.styles.Error.Render(
			fmt.Sprintf("Move %d %s to trash? (y/n)", len(m.pendingDelete), noun)))
	} else if m.prompt.Active() {
		s.WriteString(m.prompt.View())
	} else {
		s.WriteString(m.statusBar.View())
	}

	return s.String()
}

// syncViewport refreshes the scroll region and keeps the cursor line visible.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.fileList.View())

	line := m.fileList.CursorLine()
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// Navigator exposes navigation state for the tests.
func (m *Model) Navigator() *browse.Navigator { return m.nav }

// ViewState exposes the display pipeline for the tests.
func (m *Model) ViewState() *browse.ViewState { return m.view }

// FileList exposes the list component for the tests.
func (m *Model) FileList() *components.FileList { return m.fileList }

// Clipboard exposes the clipboard for the tests.
func (m *Model) Clipboard() *browse.Clipboard { return &m.clip }
