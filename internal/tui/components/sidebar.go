package components

import (
	"fmt"
	"strings"

	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/aki-app/aki/internal/tui/utils"
	tea "github.com/charmbracelet/bubbletea"
)

const profileRowID = "row-profile"

// SidebarModel renders the destination list: the search field, the main
// destinations, the Library and Playlists sections and the profile footer.
type SidebarModel struct {
	nav       *nav.Navigator
	playlists *nav.PlaylistSet

	rows          []nav.Row
	cursor        int
	scrollOffset  int
	width, height int
	focused       bool

	profileName string
	// searchView replaces the search row while the search field is being edited.
	searchView string
}

// NewSidebar creates a new SidebarModel bound to a navigator and playlist set.
func NewSidebar(n *nav.Navigator, playlists *nav.PlaylistSet, profileName string) *SidebarModel {
	s := &SidebarModel{
		nav:         n,
		playlists:   playlists,
		profileName: profileName,
	}
	s.Refresh()
	return s
}

// Init implements Component.
func (s *SidebarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (s *SidebarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}
	return s, nil
}

// handleKeyMsg processes keyboard input for the sidebar.
func (s *SidebarModel) handleKeyMsg(msg tea.KeyMsg) (Component, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		s.MoveCursor(1)
	case "k", "up":
		s.MoveCursor(-1)
	case "g", "home":
		// 'gg' is resolved by the parent keymap
		s.cursor = 0
	case "G", "end":
		s.cursor = s.lastIndex()
	case "enter", " ":
		return s, s.Activate()
	}
	return s, nil
}

// Activate returns the command for the row under the cursor.
func (s *SidebarModel) Activate() tea.Cmd {
	if s.cursor == len(s.rows) {
		return emit(OpenProfileMsg{})
	}
	row, ok := s.CurrentRow()
	if !ok {
		return nil
	}
	switch row.Type {
	case nav.RowSearch:
		return emit(FocusSearchMsg{})
	case nav.RowHeader:
		return emit(SectionToggledMsg{Section: row.Section})
	default:
		return emit(DestinationSelectedMsg{Dest: row.Dest})
	}
}

// Refresh rebuilds the rows from the navigator, keeping the cursor on the same
// row when it still exists.
func (s *SidebarModel) Refresh() {
	currentID := s.currentID()
	s.rows = nav.SidebarRows(s.nav, s.playlists.All())

	if currentID == profileRowID {
		s.cursor = len(s.rows)
		return
	}
	for i, r := range s.rows {
		if r.ID() == currentID {
			s.cursor = i
			return
		}
	}
	if s.cursor > s.lastIndex() {
		s.cursor = s.lastIndex()
	}
}

// View implements Component.
func (s *SidebarModel) View() string {
	var b strings.Builder

	// Inner height minus borders(2) and footer(2)
	innerHeight := s.height - 2
	listHeight := innerHeight - 2
	if listHeight < 1 {
		listHeight = 1
	}

	s.clampScroll(listHeight)

	end := s.scrollOffset + listHeight
	if end > len(s.rows) {
		end = len(s.rows)
	}

	selected, hasSelection := s.nav.Selected()
	for i := s.scrollOffset; i < end; i++ {
		row := s.rows[i]
		active := hasSelection && row.Type != nav.RowHeader && row.Dest.Equal(selected)
		b.WriteString(s.renderRow(row, i == s.cursor, active))
		b.WriteString("\n")
	}

	if rendered := end - s.scrollOffset; rendered < listHeight {
		b.WriteString(strings.Repeat("\n", listHeight-rendered))
	}

	profile := styles.Glyph(nav.IconProfile) + " " + s.profileName
	profile = utils.TruncateString(profile, s.contentWidth())
	footerStyle := styles.SidebarItem
	if s.focused && s.cursor == len(s.rows) {
		footerStyle = styles.SidebarCursor
	}
	b.WriteString(styles.SidebarFooter.Width(s.contentWidth()).Render(footerStyle.Render(profile)))

	if innerHeight < 3 {
		innerHeight = 3
	}
	containerStyle := styles.Sidebar
	if s.focused {
		containerStyle = styles.SidebarFocused
	}
	return containerStyle.Width(s.width).Height(innerHeight).Render(b.String())
}

func (s *SidebarModel) renderRow(row nav.Row, underCursor, active bool) string {
	width := s.contentWidth()

	var text string
	switch row.Type {
	case nav.RowHeader:
		marker := "▸"
		if s.nav.Expanded(row.Section) {
			marker = "▾"
		}
		text = styles.SidebarHeader.Render(fmt.Sprintf("%s %s", marker, utils.TruncateString(row.Label, width-2)))
	case nav.RowSearch:
		if s.searchView != "" {
			return styles.SidebarItem.Render(s.searchView)
		}
		label := row.Label
		if q := s.nav.SearchQuery(); q != "" {
			label = q
		}
		text = fmt.Sprintf("%s %s", styles.Glyph(row.Icon), utils.TruncateString(label, width-4))
	default:
		indent := ""
		if row.InSection {
			indent = "  "
		}
		label := utils.TruncateString(row.Label, width-4-len(indent))
		text = fmt.Sprintf("%s%s %s", indent, styles.Glyph(row.Icon), label)
	}

	style := styles.SidebarItem
	switch {
	case underCursor && s.focused:
		style = styles.SidebarCursor
	case active:
		style = styles.SidebarActive
	}
	return style.MaxWidth(width).Render(text)
}

func (s *SidebarModel) clampScroll(listHeight int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor < len(s.rows) && s.cursor >= s.scrollOffset+listHeight {
		s.scrollOffset = s.cursor - listHeight + 1
	}
	if s.scrollOffset > len(s.rows)-listHeight {
		s.scrollOffset = len(s.rows) - listHeight
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *SidebarModel) contentWidth() int {
	// Borders(2) + padding(2)
	w := s.width - 4
	if w < 1 {
		w = 1
	}
	return w
}

// SetSize implements Component.
func (s *SidebarModel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus sets the sidebar as focused.
func (s *SidebarModel) Focus() {
	s.focused = true
}

// Blur removes focus from the sidebar.
func (s *SidebarModel) Blur() {
	s.focused = false
}

// Focused returns whether the sidebar is focused.
func (s *SidebarModel) Focused() bool {
	return s.focused
}

// SetSearchView replaces the search row with a rendered input. An empty
// string restores the normal row.
func (s *SidebarModel) SetSearchView(v string) {
	s.searchView = v
}

// SetProfileName updates the footer label.
func (s *SidebarModel) SetProfileName(name string) {
	s.profileName = name
}

// MoveCursor moves the cursor by delta. The profile footer sits after the
// last row.
func (s *SidebarModel) MoveCursor(delta int) {
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor > s.lastIndex() {
		s.cursor = s.lastIndex()
	}
}

// MoveCursorTo places the cursor on the row showing d, if any.
func (s *SidebarModel) MoveCursorTo(d nav.Destination) bool {
	for i, r := range s.rows {
		if r.Type != nav.RowHeader && r.Dest.Equal(d) {
			s.cursor = i
			return true
		}
	}
	return false
}

// Cursor returns the current cursor position.
func (s *SidebarModel) Cursor() int {
	return s.cursor
}

// Rows returns the current sidebar rows.
func (s *SidebarModel) Rows() []nav.Row {
	return s.rows
}

// CurrentRow returns the row at the cursor. It reports false on the footer.
func (s *SidebarModel) CurrentRow() (nav.Row, bool) {
	if s.cursor >= 0 && s.cursor < len(s.rows) {
		return s.rows[s.cursor], true
	}
	return nav.Row{}, false
}

// lastIndex is the footer position.
func (s *SidebarModel) lastIndex() int {
	return len(s.rows)
}

func (s *SidebarModel) currentID() string {
	if s.cursor == len(s.rows) && len(s.rows) > 0 {
		return profileRowID
	}
	if row, ok := s.CurrentRow(); ok {
		return row.ID()
	}
	return ""
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
