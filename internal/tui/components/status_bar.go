package components

import (
	"skim/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusBar shows the summary line, transient messages and a spinner while
// a directory read is in flight.
type StatusBar struct {
	text    string
	message string
	spinner spinner.Model
	loading bool
	styles  *styles.Styles
}

func NewStatusBar(st *styles.Styles) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Muted

	return &StatusBar{
		spinner: s,
		styles:  st,
	}
}

// SetText sets the persistent summary, e.g. "12 items · 3.4 MB".
func (s *StatusBar) SetText(text string) {
	s.text = text
}

// SetMessage sets a transient message that displaces the summary until the
// next call.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

func (s *StatusBar) ClearMessage() {
	s.message = ""
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) Loading() bool {
	return s.loading
}

func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	text := s.text
	if s.message != "" {
		text = s.message
	}

	if s.loading {
		return s.styles.StatusBar.Render(s.spinner.View() + " " + text)
	}
	return s.styles.StatusBar.Render(text)
}
