package components

import (
	"skim/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt is a one-line text input used for search, rename, new folder and
// delete confirmation.
type Prompt struct {
	input  textinput.Model
	label  string
	active bool
	styles *styles.Styles
}

func NewPrompt(st *styles.Styles) *Prompt {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Width = 40

	return &Prompt{
		input:  ti,
		styles: st,
	}
}

// Start activates the prompt with a label and an initial value.
func (p *Prompt) Start(label, initial string) tea.Cmd {
	p.label = label
	p.active = true
	p.input.SetValue(initial)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Stop deactivates the prompt and clears its value.
func (p *Prompt) Stop() {
	p.active = false
	p.input.Blur()
	p.input.SetValue("")
}

func (p *Prompt) Active() bool {
	return p.active
}

func (p *Prompt) Value() string {
	return p.input.Value()
}

func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	if !p.active {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Prompt) View() string {
	if !p.active {
		return ""
	}
	return p.styles.Prompt.Render(p.label) + " " + p.input.View()
}
