package components

import (
	"strconv"
	"strings"

	"github.com/aki-app/aki/internal/search"
	"github.com/aki-app/aki/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToolbarModel renders the search facet menus and edits a search.Selection.
// 'f' opens the menus; while open, h/l switch menus, j/k move between
// options and space or enter toggles one.
type ToolbarModel struct {
	selection *search.Selection
	menu      int
	option    int
	open      bool
	width     int
}

// NewToolbar creates a toolbar editing sel.
func NewToolbar(sel *search.Selection) *ToolbarModel {
	return &ToolbarModel{selection: sel}
}

// Init implements Component.
func (t *ToolbarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Keys are only consumed while a menu is open,
// except the open and reset keys.
func (t *ToolbarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		t.HandleKey(key)
	}
	return t, nil
}

// HandleKey processes a key and reports whether it was consumed.
func (t *ToolbarModel) HandleKey(msg tea.KeyMsg) bool {
	key := msg.String()

	if !t.open {
		switch key {
		case "f":
			t.open = true
			t.option = 0
			return true
		case "X":
			t.selection.Reset()
			return true
		}
		return false
	}

	options := t.Facet().Options()
	switch key {
	case "esc", "f":
		t.open = false
	case "h", "left":
		t.menu = (t.menu - 1 + len(search.Facets)) % len(search.Facets)
		t.option = 0
	case "l", "right", "tab":
		t.menu = (t.menu + 1) % len(search.Facets)
		t.option = 0
	case "j", "down":
		if t.option < len(options)-1 {
			t.option++
		}
	case "k", "up":
		if t.option > 0 {
			t.option--
		}
	case " ", "enter":
		t.selection.Toggle(t.Facet(), options[t.option])
	case "X":
		t.selection.Reset()
	default:
		// Menus are modal while open
	}
	return true
}

// Facet returns the menu under the cursor.
func (t *ToolbarModel) Facet() search.Facet {
	return search.Facets[t.menu]
}

// Open reports whether a menu is showing.
func (t *ToolbarModel) Open() bool {
	return t.open
}

// Close hides the open menu.
func (t *ToolbarModel) Close() {
	t.open = false
}

// View implements Component.
func (t *ToolbarModel) View() string {
	menus := make([]string, 0, len(search.Facets))
	for i, f := range search.Facets {
		label := f.String()
		if f == search.FacetRating {
			label += ": " + t.selection.Rating()
		} else if n := len(t.selection.Selected(f)); n > 0 {
			label += " (" + strconv.Itoa(n) + ")"
		}
		label += " ▾"

		style := styles.ToolbarMenu
		if t.open && i == t.menu {
			style = styles.ToolbarMenuActive
		}
		menus = append(menus, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, menus...)

	if !t.open {
		return bar
	}

	var b strings.Builder
	b.WriteString(bar)
	for i, opt := range t.Facet().Options() {
		b.WriteString("\n")
		mark := "[ ]"
		style := styles.ToolbarOption
		if t.selection.IsSelected(t.Facet(), opt) {
			mark = "[x]"
			style = styles.ToolbarOptionSelected
		}
		cursor := "  "
		if i == t.option {
			cursor = "> "
		}
		b.WriteString(style.Render(cursor + mark + " " + opt))
	}
	return b.String()
}

// SetSize implements Component.
func (t *ToolbarModel) SetSize(width, _ int) {
	t.width = width
}
