package views

import (
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeView is the landing screen.
type HomeView struct {
	*BaseView
}

// NewHomeView creates a new HomeView.
func NewHomeView(ctx *Context) *HomeView {
	return &HomeView{BaseView: NewBaseView(ctx, nav.KindHome)}
}

// HandleSelect opens the anime details screen.
func (v *HomeView) HandleSelect() tea.Cmd {
	return emit(components.PushMsg{Dest: nav.AnimeDetails})
}

// Render returns the view's content.
func (v *HomeView) Render(width, height int) string {
	return screen(nav.Home.Title(), withButton("Home View", "Open Anime Details"), width, height)
}

// Hints returns the status bar hints.
func (v *HomeView) Hints() [][2]string {
	return [][2]string{{"enter", "open anime details"}}
}
