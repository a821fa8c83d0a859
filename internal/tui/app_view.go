package tui

import (
	"strings"

	"github.com/aki-app/aki/internal/tui/components"
	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/aki-app/aki/internal/tui/utils"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth    = 30
	minSidebarWidth = 18
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.showHelp {
		return a.help.View()
	}

	var bottomBar string
	if a.commandLine.Active() {
		bottomBar = a.commandLine.View()
	} else {
		bottomBar = a.renderStatusBar()
	}
	mainHeight := a.height - lipgloss.Height(bottomBar)

	sideWidth := sidebarWidth
	if a.width < 80 {
		sideWidth = minSidebarWidth
	}
	if a.searching {
		a.searchInput.Width = sideWidth - 8
		a.sidebar.SetSearchView(a.searchInput.View())
	}
	a.sidebar.SetSize(sideWidth, mainHeight)

	contentWidth := a.width - sideWidth - 2
	content := a.renderContent(contentWidth, mainHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), content),
		bottomBar,
	)

	if a.prompt.Active() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.prompt.View())
	}
	return screen
}

// renderContent draws the breadcrumbs, the search toolbar when Search is
// the selection, and the visible view inside a scrollable viewport.
func (a *App) renderContent(width, height int) string {
	// Borders(2) + padding(2)
	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	header := a.renderBreadcrumbs(innerWidth)
	if a.searchVisible() {
		a.toolbar.SetSize(innerWidth, 1)
		header = lipgloss.JoinVertical(lipgloss.Left, header, a.toolbar.View())
	}

	innerHeight := height - 2
	vpHeight := innerHeight - lipgloss.Height(header)
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !a.viewportReady {
		a.viewport = viewport.New(innerWidth, vpHeight)
		a.viewportReady = true
	} else {
		a.viewport.Width = innerWidth
		a.viewport.Height = vpHeight
	}
	a.viewport.SetContent(a.coordinator.Render(innerWidth, vpHeight))

	style := styles.MainContent
	if a.focusedPane == components.PaneContent {
		style = styles.MainContentFocused
	}
	if innerHeight < 3 {
		innerHeight = 3
	}
	body := lipgloss.JoinVertical(lipgloss.Left, header, a.viewport.View())
	return style.Width(width).Height(innerHeight).Render(body)
}

// renderBreadcrumbs renders the unified route as "Home › Anime Details › Watch".
func (a *App) renderBreadcrumbs(width int) string {
	crumbs := a.nav.Breadcrumbs()
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		if i == len(crumbs)-1 {
			parts[i] = styles.BreadcrumbCurrent.Render(c)
		} else {
			parts[i] = styles.Breadcrumb.Render(c)
		}
	}
	line := strings.Join(parts, styles.Breadcrumb.Render(" › "))
	if lipgloss.Width(line) > width {
		// Fall back to the plain trail so truncation counts cells correctly
		line = styles.Breadcrumb.Render(utils.TruncateString(strings.Join(crumbs, " › "), width))
	}
	return line
}

// renderStatusBar renders the status message, or key hints when there is
// no message.
func (a *App) renderStatusBar() string {
	var left string
	switch {
	case a.statusMsg != "" && a.statusErr:
		left = styles.StatusBarError.Render(a.statusMsg)
	case a.statusMsg != "":
		left = styles.StatusBarSuccess.Render(a.statusMsg)
	default:
		left = a.renderHints()
	}

	right := styles.StatusBarText.Render(a.nav.Visible().Title())
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + styles.StatusBarText.Render(strings.Repeat(" ", gap)) + right
	return styles.StatusBar.Width(a.width).MaxHeight(1).Render(line)
}

func (a *App) renderHints() string {
	hints := a.coordinator.Hints()
	if a.searching {
		hints = [][2]string{{"enter", "results"}, {"esc", "done"}}
	} else {
		hints = append(hints,
			[2]string{a.keymap.SwitchPane.Key, "pane"},
			[2]string{a.keymap.Search.Key, "search"},
			[2]string{"esc", "back"},
			[2]string{a.keymap.Help.Key, "help"},
		)
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.StatusBarKey.Render(h[0])+styles.StatusBarText.Render(" "+h[1]))
	}
	return strings.Join(parts, styles.StatusBarText.Render(" • "))
}
