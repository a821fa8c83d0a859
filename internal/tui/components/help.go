package components

import (
	"strings"

	"github.com/aki-app/aki/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel renders the keyboard shortcut overlay.
type HelpModel struct {
	width, height int
	keymap        [][]string
	// leftSections are rendered in the first column, the rest in the second.
	leftSections map[string]bool
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{
		leftSections: map[string]bool{
			"Navigation": true,
			"Sidebar":    true,
			"General":    true,
		},
	}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, emit(HelpClosedMsg{})
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	var col1, col2 strings.Builder
	current := &col1

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		// A key with no description starts a section
		if desc == "" && key != "" {
			if h.leftSections[key] {
				current = &col1
			} else {
				current = &col2
			}
			current.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}
		if key == "" && desc == "" {
			current.WriteString("\n")
			continue
		}

		keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)
		current.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	colWidth := h.width / 2
	if colWidth > 50 {
		colWidth = 50
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1.String()),
		columnStyle.Render(col2.String()),
	))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets the help items. Each item is a {key, description} pair;
// a pair with an empty description is a section header.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
