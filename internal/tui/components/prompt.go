package components

import (
	"strings"

	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is a single-line text dialog used to name playlists.
type PromptModel struct {
	input   textinput.Model
	title   string
	purpose PromptPurpose
	target  string
	active  bool
	width   int
	height  int
	err     string
}

// NewPrompt creates an inactive prompt.
func NewPrompt() *PromptModel {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return &PromptModel{input: ti}
}

// Open shows the prompt. target is passed back in PromptSubmittedMsg.
func (p *PromptModel) Open(purpose PromptPurpose, title, initial, target string) tea.Cmd {
	p.purpose = purpose
	p.title = title
	p.target = target
	p.err = ""
	p.active = true
	p.input.Placeholder = "Playlist name"
	p.input.SetValue(initial)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Close hides the prompt.
func (p *PromptModel) Close() {
	p.active = false
	p.input.Blur()
	p.input.Reset()
}

// Active reports whether the prompt is showing.
func (p *PromptModel) Active() bool {
	return p.active
}

// Init implements Component.
func (p *PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *PromptModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !p.active {
		return p, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.Close()
			return p, emit(PromptCancelledMsg{})
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			if value == "" {
				p.err = "Name cannot be empty"
				return p, nil
			}
			submitted := PromptSubmittedMsg{Purpose: p.purpose, Target: p.target, Value: value}
			p.Close()
			return p, emit(submitted)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements Component.
func (p *PromptModel) View() string {
	if !p.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(p.input.View()))
	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.StatusBarError.Render(p.err))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("enter: save • esc: cancel"))
	return styles.Dialog.Render(b.String())
}

// SetSize implements Component.
func (p *PromptModel) SetSize(width, height int) {
	p.width = width
	p.height = height
	if w := width/2 - 8; w > 20 {
		p.input.Width = w
	}
}
