package components

import (
	"strings"

	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxSuggestions = 5

// CommandSubmittedMsg carries an entered command line, without the ':'.
type CommandSubmittedMsg struct {
	Input string
}

// CompleteFunc returns completions for the current input. Each completion is
// a full replacement for the input.
type CompleteFunc func(input string) []string

// CommandLineModel is the vim-style ':' command line.
type CommandLineModel struct {
	input            textinput.Model
	active           bool
	history          []string
	historyCursor    int
	suggestions      []string
	suggestionCursor int
	complete         CompleteFunc
	width            int
}

// NewCommandLine creates an inactive command line.
func NewCommandLine(complete CompleteFunc) *CommandLineModel {
	input := textinput.New()
	input.Prompt = "" // Prompt is rendered externally
	input.CharLimit = 200
	input.Width = 50

	return &CommandLineModel{
		input:         input,
		historyCursor: -1,
		complete:      complete,
	}
}

// Open activates the command line.
func (c *CommandLineModel) Open() tea.Cmd {
	c.active = true
	c.input.Reset()
	c.suggestions = nil
	c.historyCursor = -1
	return c.input.Focus()
}

// Close deactivates the command line.
func (c *CommandLineModel) Close() {
	c.active = false
	c.input.Blur()
	c.input.Reset()
	c.suggestions = nil
}

// Active reports whether the command line is open.
func (c *CommandLineModel) Active() bool {
	return c.active
}

// History returns the submitted commands, oldest first.
func (c *CommandLineModel) History() []string {
	return c.history
}

// Suggestions returns the current completions.
func (c *CommandLineModel) Suggestions() []string {
	return c.suggestions
}

// Value returns the current input.
func (c *CommandLineModel) Value() string {
	return c.input.Value()
}

// Init implements Component.
func (c *CommandLineModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (c *CommandLineModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !c.active {
		return c, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			c.Close()
			return c, nil
		case "enter":
			return c, c.submit()
		case "tab":
			c.acceptSuggestion()
			return c, nil
		case "up":
			c.historyPrev()
			return c, nil
		case "down":
			c.historyNext()
			return c, nil
		case "backspace":
			if c.input.Value() == "" {
				c.Close()
				return c, nil
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.updateSuggestions()
	return c, cmd
}

func (c *CommandLineModel) submit() tea.Cmd {
	value := strings.TrimSpace(c.input.Value())
	c.Close()
	if value == "" {
		return nil
	}

	if len(c.history) == 0 || c.history[len(c.history)-1] != value {
		c.history = append(c.history, value)
	}
	c.historyCursor = -1

	return emit(CommandSubmittedMsg{Input: value})
}

// acceptSuggestion replaces the input with the highlighted suggestion and
// advances the highlight for repeated tabs.
func (c *CommandLineModel) acceptSuggestion() {
	if len(c.suggestions) == 0 {
		c.updateSuggestions()
		if len(c.suggestions) == 0 {
			return
		}
	}
	if c.suggestionCursor >= len(c.suggestions) {
		c.suggestionCursor = 0
	}
	c.input.SetValue(c.suggestions[c.suggestionCursor])
	c.input.CursorEnd()
	c.suggestionCursor = (c.suggestionCursor + 1) % len(c.suggestions)
}

func (c *CommandLineModel) historyPrev() {
	if len(c.history) == 0 {
		return
	}
	if c.historyCursor == -1 {
		c.historyCursor = len(c.history) - 1
	} else if c.historyCursor > 0 {
		c.historyCursor--
	}
	c.input.SetValue(c.history[c.historyCursor])
	c.input.CursorEnd()
}

func (c *CommandLineModel) historyNext() {
	if len(c.history) == 0 || c.historyCursor == -1 {
		return
	}
	if c.historyCursor < len(c.history)-1 {
		c.historyCursor++
		c.input.SetValue(c.history[c.historyCursor])
		c.input.CursorEnd()
		return
	}
	c.historyCursor = -1
	c.input.SetValue("")
}

func (c *CommandLineModel) updateSuggestions() {
	c.suggestionCursor = 0
	if c.complete == nil || c.input.Value() == "" {
		c.suggestions = nil
		return
	}
	matches := c.complete(c.input.Value())
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	c.suggestions = matches
}

// View implements Component.
func (c *CommandLineModel) View() string {
	if !c.active {
		return ""
	}

	line := styles.CommandPrompt.Render(":") + styles.CommandInput.Render(c.input.View())

	if len(c.suggestions) > 0 {
		items := make([]string, 0, len(c.suggestions))
		for i, s := range c.suggestions {
			if i == c.suggestionCursor {
				items = append(items, styles.CommandSuggestionSelected.Render(s))
			} else {
				items = append(items, styles.CommandSuggestion.Render(s))
			}
		}
		line = lipgloss.JoinVertical(lipgloss.Left, strings.Join(items, "  "), line)
	}

	return styles.CommandLineContainer.Width(c.width).Render(line)
}

// SetSize implements Component.
func (c *CommandLineModel) SetSize(width, _ int) {
	c.width = width
	if width > 10 {
		c.input.Width = width - 6
	}
}
