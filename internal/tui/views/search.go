package views

import (
	"strings"

	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/search"
	"github.com/aki-app/aki/internal/tui/components"
	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/aki-app/aki/internal/tui/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// ResultCount is the number of placeholder result tiles.
	ResultCount = 20
	tileWidth   = 22
	tileHeight  = 3
)

// SearchView shows recent searches and the placeholder result grid for the
// navigator's search query.
type SearchView struct {
	*BaseView
}

// NewSearchView creates a new SearchView.
func NewSearchView(ctx *Context) *SearchView {
	return &SearchView{BaseView: NewBaseView(ctx, nav.KindSearch)}
}

// Recent returns the recent searches matching the current query.
func (v *SearchView) Recent() []string {
	return search.Filter(v.Nav.SearchQuery(), search.RecentSearches)
}

// HandleKey processes keyboard input for this view.
func (v *SearchView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		v.MoveCursor(1, len(v.Recent()))
		return nil, true
	case "k", "up":
		v.MoveCursor(-1, len(v.Recent()))
		return nil, true
	case "x":
		if v.Nav.SearchQuery() == "" {
			return nil, false
		}
		v.Cursor = 0
		return emit(components.SetSearchQueryMsg{Query: ""}), true
	}
	return nil, false
}

// HandleSelect fills the query with the recent search under the cursor.
func (v *SearchView) HandleSelect() tea.Cmd {
	recent := v.Recent()
	if v.Cursor < 0 || v.Cursor >= len(recent) {
		return nil
	}
	return emit(components.SetSearchQueryMsg{Query: recent[v.Cursor]})
}

// Render returns the view's content.
func (v *SearchView) Render(width, height int) string {
	var b strings.Builder

	query := v.Nav.SearchQuery()
	field := styles.Glyph(nav.IconSearch) + " "
	if query == "" {
		field += styles.HelpDesc.Render("Search anime...")
	} else {
		field += utils.TruncateString(query, width-8)
	}
	b.WriteString(styles.Input.Width(width - 2).Render(field))
	b.WriteString("\n\n")

	recent := v.Recent()
	if len(recent) > 0 {
		b.WriteString(styles.Subtitle.Render("Recent Searches"))
		b.WriteString("\n")
		for i, r := range recent {
			line := styles.Glyph(nav.IconClock) + " " + r
			if i == v.Cursor {
				b.WriteString(styles.SidebarCursor.Render(line))
			} else {
				b.WriteString(styles.SidebarItem.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if query != "" {
		b.WriteString("\n")
		if v.Facets != nil && v.Facets.Active() {
			b.WriteString(styles.HelpDesc.Render("Filters: " + v.Facets.Summary()))
			b.WriteString("\n")
		}
		b.WriteString(resultGrid(width))
	}

	return b.String()
}

// Hints returns the status bar hints.
func (v *SearchView) Hints() [][2]string {
	return [][2]string{{"enter", "use search"}, {"x", "clear"}, {"f", "filters"}}
}

// resultGrid lays out ResultCount placeholder tiles in as many columns as
// fit in width.
func resultGrid(width int) string {
	cols := width / (tileWidth + 1)
	if cols < 1 {
		cols = 1
	}

	tile := styles.Tile.Width(tileWidth - 2).Height(tileHeight - 2).Render(AnimeTitle)

	var rows []string
	for i := 0; i < ResultCount; i += cols {
		n := cols
		if i+n > ResultCount {
			n = ResultCount - i
		}
		cells := make([]string, 0, n*2)
		for j := 0; j < n; j++ {
			if j > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, tile)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
