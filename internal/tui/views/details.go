package views

import (
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/components"
	"github.com/aki-app/aki/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// AnimeTitle is the placeholder title used by the details and watch screens.
const AnimeTitle = "Anime Title"

// DetailsView is the anime details screen.
type DetailsView struct {
	*BaseView
}

// NewDetailsView creates a new DetailsView.
func NewDetailsView(ctx *Context) *DetailsView {
	return &DetailsView{BaseView: NewBaseView(ctx, nav.KindAnimeDetails)}
}

// HandleSelect starts watching.
func (v *DetailsView) HandleSelect() tea.Cmd {
	return emit(components.PushMsg{Dest: nav.AnimeWatch})
}

// HandleKey handles 'w' as a shortcut for Watch Now.
func (v *DetailsView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "w" {
		return v.HandleSelect(), true
	}
	return nil, false
}

// Render returns the view's content.
func (v *DetailsView) Render(width, height int) string {
	return screen(AnimeTitle, withButton(nav.AnimeDetails.Title(), "Watch Now"), width, height)
}

// Hints returns the status bar hints.
func (v *DetailsView) Hints() [][2]string {
	return [][2]string{{"enter", "watch now"}}
}

// WatchView is the player screen.
type WatchView struct {
	*BaseView
}

// NewWatchView creates a new WatchView.
func NewWatchView(ctx *Context) *WatchView {
	return &WatchView{BaseView: NewBaseView(ctx, nav.KindAnimeWatch)}
}

// OnEnter announces playback.
func (v *WatchView) OnEnter(dest nav.Destination) tea.Cmd {
	v.BaseView.OnEnter(dest)
	return emit(components.NowPlayingMsg{Title: AnimeTitle})
}

// Render returns the view's content.
func (v *WatchView) Render(width, height int) string {
	return screen("Now Playing", styles.Placeholder.Render("Anime Watch View"), width, height)
}
