package views

import (
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/styles"
)

// PlaceholderView renders "<Title> View" for destinations without content
// yet: Trending, Genres and Schedule.
type PlaceholderView struct {
	*BaseView
}

// NewPlaceholderView creates a placeholder for kind.
func NewPlaceholderView(ctx *Context, kind nav.Kind) *PlaceholderView {
	return &PlaceholderView{BaseView: NewBaseView(ctx, kind)}
}

// Render returns the view's content.
func (v *PlaceholderView) Render(width, height int) string {
	title := v.Destination().Title()
	return screen(title, styles.Placeholder.Render(title+" View"), width, height)
}

// LibraryView shows a library section.
type LibraryView struct {
	*BaseView
}

// NewLibraryView creates a new LibraryView.
func NewLibraryView(ctx *Context) *LibraryView {
	return &LibraryView{BaseView: NewBaseView(ctx, nav.KindLibrary)}
}

// Render returns the view's content.
func (v *LibraryView) Render(width, height int) string {
	kind, _ := v.Destination().Library()
	return screen(kind.String(), styles.Placeholder.Render(kind.String()+" View"), width, height)
}

// PlaylistView shows a playlist. The label is looked up by key so renames
// show up without re-entering the view.
type PlaylistView struct {
	*BaseView
}

// NewPlaylistView creates a new PlaylistView.
func NewPlaylistView(ctx *Context) *PlaylistView {
	return &PlaylistView{BaseView: NewBaseView(ctx, nav.KindPlaylist)}
}

// Name returns the current playlist label.
func (v *PlaylistView) Name() string {
	p, _ := v.Destination().Playlist()
	if v.Playlists != nil {
		if current, ok := v.Playlists.Get(p.Key); ok {
			return current.Name
		}
	}
	return p.Name
}

// Render returns the view's content.
func (v *PlaylistView) Render(width, height int) string {
	name := v.Name()
	return screen(name, styles.Placeholder.Render(name+" View"), width, height)
}

// Hints returns the status bar hints.
func (v *PlaylistView) Hints() [][2]string {
	return [][2]string{{"R", "rename playlist"}}
}

// SettingsView shows the profile and settings screen.
type SettingsView struct {
	*BaseView
}

// NewSettingsView creates a new SettingsView.
func NewSettingsView(ctx *Context) *SettingsView {
	return &SettingsView{BaseView: NewBaseView(ctx, nav.KindSettings)}
}

// Render returns the view's content.
func (v *SettingsView) Render(width, height int) string {
	body := styles.Placeholder.Render("Settings")
	if v.Profile != "" {
		body += "\n\n" + styles.Subtitle.Render(styles.Glyph(nav.IconProfile)+" "+v.Profile)
	}
	return screen(nav.Settings.Title(), body, width, height)
}
