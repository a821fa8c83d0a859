package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aki-app/aki/internal/config"
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/components"
)

func TestNewAppStartsAtHome(t *testing.T) {
	a := newTestApp(t, nil)

	if !a.nav.Visible().Equal(nav.Home) {
		t.Errorf("expected Home, got %s", a.nav.Visible())
	}
	if a.FocusedPane() != components.PaneSidebar {
		t.Error("sidebar should start focused")
	}
	if a.coordinator.CurrentView() == nil || a.coordinator.Current().Kind() != nav.KindHome {
		t.Error("coordinator should show home")
	}
}

func TestNewAppStartDestinationAndRoute(t *testing.T) {
	a := newTestApp(t, func(cfg *config.Config, _ *Options) {
		cfg.UI.StartDestination = "library-Movies"
	})
	if sel, _ := a.nav.Selected(); !sel.Equal(nav.LibrarySection(nav.Movies)) {
		t.Errorf("expected Movies selected, got %s", sel)
	}

	a = newTestApp(t, func(_ *config.Config, opts *Options) {
		opts.Route = "trending/anime-details/anime-watch"
	})
	if got := a.nav.CurrentRoute(); got != "trending/anime-details/anime-watch" {
		t.Errorf("route = %q", got)
	}
}

func TestNewAppRejectsUnknownStart(t *testing.T) {
	_, err := NewApp(Options{
		Config: func() *config.Config {
			cfg := config.DefaultConfig()
			cfg.UI.StartDestination = "nowhere"
			return cfg
		}(),
	})
	if !errors.Is(err, nav.ErrUnknownDestination) {
		t.Errorf("expected ErrUnknownDestination, got %v", err)
	}

	_, err = NewApp(Options{Route: "home/bogus"})
	if !errors.Is(err, nav.ErrUnknownDestination) {
		t.Errorf("expected ErrUnknownDestination for route, got %v", err)
	}
}

func TestDrillDownAndBack(t *testing.T) {
	a := newTestApp(t, func(cfg *config.Config, _ *Options) {
		cfg.UI.Notifications = true
	})

	a.press("tab")
	if a.FocusedPane() != components.PaneContent {
		t.Fatal("tab should focus content")
	}

	a.press("enter")
	if !a.nav.Visible().Equal(nav.AnimeDetails) {
		t.Fatalf("expected details, got %s", a.nav.Visible())
	}

	a.press("enter")
	if !a.nav.Visible().Equal(nav.AnimeWatch) {
		t.Fatalf("expected watch, got %s", a.nav.Visible())
	}
	if got := strings.Join(a.nav.Breadcrumbs(), " > "); got != "Home > Anime Details > Watch" {
		t.Errorf("breadcrumbs = %q", got)
	}
	if len(a.notes.titles) != 1 || a.notes.titles[0] != "Now Playing" {
		t.Errorf("expected Now Playing notification, got %v", a.notes.titles)
	}

	a.press("esc")
	if !a.nav.Visible().Equal(nav.AnimeDetails) {
		t.Errorf("esc should pop to details, got %s", a.nav.Visible())
	}
	a.press("backspace")
	if !a.nav.Visible().Equal(nav.Home) || a.nav.Depth() != 0 {
		t.Errorf("backspace should pop to home, got %s depth %d", a.nav.Visible(), a.nav.Depth())
	}

	a.press("esc")
	if a.FocusedPane() != components.PaneSidebar {
		t.Error("esc at the root should return focus to the sidebar")
	}
}

func TestNotificationsDisabledByDefault(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("tab", "enter", "enter")

	if len(a.notes.titles) != 0 {
		t.Errorf("no notification expected, got %v", a.notes.titles)
	}
	if msg, _ := a.Status(); msg != "Now Playing: Anime Title" {
		t.Errorf("status = %q", msg)
	}
}

func TestRepeatedWatchPushNotifiesEachTime(t *testing.T) {
	a := newTestApp(t, func(cfg *config.Config, _ *Options) {
		cfg.UI.Notifications = true
	})

	a.press("tab", "enter", "enter")
	a.send(components.PushMsg{Dest: nav.AnimeWatch})
	if a.nav.Depth() != 3 {
		t.Fatalf("depth = %d", a.nav.Depth())
	}
	if len(a.notes.titles) != 2 {
		t.Errorf("expected a notification per watch push, got %v", a.notes.titles)
	}

	a.press("esc")
	if !a.nav.Visible().Equal(nav.AnimeWatch) || len(a.notes.titles) != 3 {
		t.Errorf("popping back to the earlier watch screen should enter it again, got %s and %v", a.nav.Visible(), a.notes.titles)
	}
}

func TestSidebarSelectionKeepsStackByDefault(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("tab", "enter", "tab")

	// Cursor starts on Home; move to Trending
	a.press("j")
	a.press("enter")

	if sel, _ := a.nav.Selected(); !sel.Equal(nav.Trending) {
		t.Fatalf("expected Trending selected, got %s", sel)
	}
	if !a.nav.Visible().Equal(nav.AnimeDetails) {
		t.Errorf("stack top should stay visible, got %s", a.nav.Visible())
	}
	if got := a.nav.CurrentRoute(); got != "trending/anime-details" {
		t.Errorf("route = %q", got)
	}
}

func TestSidebarSelectionClearsStackWhenConfigured(t *testing.T) {
	a := newTestApp(t, func(cfg *config.Config, _ *Options) {
		cfg.Navigation.ClearStackOnSelect = true
	})
	a.press("tab", "enter", "tab", "j", "enter")

	if !a.nav.Visible().Equal(nav.Trending) || a.nav.Depth() != 0 {
		t.Errorf("expected Trending with empty stack, got %s depth %d", a.nav.Visible(), a.nav.Depth())
	}
}

func TestSearchFocusAndQuery(t *testing.T) {
	a := newTestApp(t, nil)

	a.press("/")
	if !a.Searching() {
		t.Fatal("/ should focus the search field")
	}
	if sel, _ := a.nav.Selected(); !sel.Equal(nav.Search) {
		t.Errorf("search should be selected, got %s", sel)
	}

	a.typeText("naruto")
	if a.nav.SearchQuery() != "naruto" {
		t.Errorf("query = %q", a.nav.SearchQuery())
	}

	// Keys go to the field while searching
	if !a.nav.Expanded(nav.SectionLibrary) {
		t.Fatal("setup: library should be expanded")
	}
	a.typeText("L")
	if !a.nav.Expanded(nav.SectionLibrary) || a.nav.SearchQuery() != "narutoL" {
		t.Error("typing L in the search field should not toggle the library")
	}

	a.press("enter")
	if a.Searching() {
		t.Error("enter should leave the search field")
	}
	if a.FocusedPane() != components.PaneContent {
		t.Error("enter should focus the results")
	}
	if !a.nav.Visible().Equal(nav.Search) {
		t.Errorf("visible = %s", a.nav.Visible())
	}
}

func TestSearchRecentSelectionAndFacets(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("/", "enter")

	// Pick "Naruto" from recent searches
	a.press("j", "enter")
	if a.nav.SearchQuery() != "Naruto" {
		t.Fatalf("query = %q", a.nav.SearchQuery())
	}

	// Toolbar: open, toggle first genre, close
	a.press("f", "space", "esc")
	if got := a.facets.Summary(); got != "Genre: Action" {
		t.Errorf("facets = %q", got)
	}
	a.press("X")
	if a.facets.Active() {
		t.Error("X should reset the facets")
	}

	a.press("x")
	if a.nav.SearchQuery() != "" {
		t.Errorf("x should clear the query, got %q", a.nav.SearchQuery())
	}
}

func TestSectionToggleKeys(t *testing.T) {
	a := newTestApp(t, nil)

	a.press("L")
	if a.nav.Expanded(nav.SectionLibrary) {
		t.Error("L should collapse the library")
	}
	a.press("P")
	if a.nav.Expanded(nav.SectionPlaylists) {
		t.Error("P should collapse the playlists")
	}
	if got := len(a.sidebar.Rows()); got != 7 {
		t.Errorf("collapsed sidebar should have 7 rows, got %d", got)
	}
	a.press("L")
	if !a.nav.Expanded(nav.SectionLibrary) {
		t.Error("L should expand the library again")
	}
}

func TestProfileKey(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("p")

	sel, ok := a.nav.Selected()
	if !ok || !sel.Equal(nav.Settings) {
		t.Errorf("profile should select Settings, got %s", sel)
	}
	if !a.nav.Visible().Equal(nav.Settings) || a.nav.Depth() != 1 {
		t.Errorf("profile should push Settings, got %s depth %d", a.nav.Visible(), a.nav.Depth())
	}
}

func TestCopyRoute(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("tab", "enter", "y", "y")

	if a.clip.text != "home/anime-details" {
		t.Errorf("clipboard = %q", a.clip.text)
	}
	if msg, isErr := a.Status(); isErr || !strings.Contains(msg, "home/anime-details") {
		t.Errorf("status = %q (error %v)", msg, isErr)
	}
}

func TestCopyRouteFailure(t *testing.T) {
	a := newTestApp(t, nil)
	a.clip.err = errClipboard
	a.press("ctrl+y")

	if _, isErr := a.Status(); !isErr {
		t.Error("clipboard failure should be reported")
	}
}

func TestCreatePlaylistPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a := newTestApp(t, func(_ *config.Config, opts *Options) {
		opts.ConfigPath = path
	})

	a.press("n")
	if !a.prompt.Active() {
		t.Fatal("n should open the prompt")
	}
	a.typeText("Weekend")
	a.press("enter")

	if a.playlists.Len() != 2 {
		t.Fatalf("expected 2 playlists, got %d", a.playlists.Len())
	}
	row, ok := a.sidebar.CurrentRow()
	if !ok || row.Label != "Weekend" {
		t.Errorf("cursor should move to the new playlist, got %+v", row)
	}

	saved, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if len(saved.Playlists) != 2 || saved.Playlists[1].Name != "Weekend" || saved.Playlists[1].ID == "" {
		t.Errorf("unexpected saved playlists: %+v", saved.Playlists)
	}
	if saved.Playlists[0].ID != "" {
		t.Errorf("config playlist should keep its name key, got %+v", saved.Playlists[0])
	}
}

func TestRenamePlaylistKeepsIdentity(t *testing.T) {
	a := newTestApp(t, nil)
	target := nav.PlaylistNamed("My Top 25 Rated")

	a.selectDestination(target)
	a.push(nav.AnimeDetails)
	a.sidebar.MoveCursorTo(target)

	a.press("R")
	if !a.prompt.Active() {
		t.Fatal("R should open the rename prompt")
	}
	a.press("esc")

	a.send(components.PromptSubmittedMsg{
		Purpose: components.PromptRenamePlaylist,
		Target:  "My Top 25 Rated",
		Value:   "Favourites",
	})

	sel, _ := a.nav.Selected()
	p, _ := sel.Playlist()
	if p.Name != "Favourites" || sel.ID() != "playlist-My Top 25 Rated" {
		t.Errorf("selection after rename: %+v (%s)", p, sel.ID())
	}
	if got := a.nav.Breadcrumbs()[0]; got != "Favourites" {
		t.Errorf("breadcrumb = %q", got)
	}
	if a.nav.Depth() != 1 {
		t.Error("rename must not touch the stack")
	}
}

func TestRenameWithoutPlaylist(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("R")

	if a.prompt.Active() {
		t.Error("rename on a non-playlist row should not open the prompt")
	}
	if msg, isErr := a.Status(); !isErr || msg != errNoPlaylist.Error() {
		t.Errorf("status = %q (error %v)", msg, isErr)
	}
}

func TestDeletePlaylistForgetsSelection(t *testing.T) {
	a := newTestApp(t, nil)
	target := nav.PlaylistNamed("My Top 25 Rated")
	a.selectDestination(target)
	a.sidebar.MoveCursorTo(target)

	a.press("d", "d")

	if a.playlists.Len() != 0 {
		t.Errorf("playlist should be removed")
	}
	if sel, _ := a.nav.Selected(); !sel.Equal(nav.Home) {
		t.Errorf("selection should fall back to Home, got %s", sel)
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t, nil)

	a.press("?")
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view not rendered")
	}

	// Keys do not leak to navigation while help is open
	a.press("L")
	if !a.nav.Expanded(nav.SectionLibrary) {
		t.Error("L leaked through the help overlay")
	}

	a.press("esc")
	if a.showHelp {
		t.Error("esc should close help")
	}
}

func TestQuit(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("q")
	if !a.quitting {
		t.Error("q should quit")
	}

	a = newTestApp(t, nil)
	a.press("/")
	a.press("ctrl+c")
	if !a.quitting {
		t.Error("ctrl+c should quit even while searching")
	}
}

func TestViewLayout(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("tab", "enter")

	out := a.View()
	for _, want := range []string{"Home", "Anime Details", "Watch Now", "John Doe"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(out, "Genre ▾") {
		t.Error("toolbar should only show on the search screen")
	}

	a.press("esc", "/", "esc")
	if !strings.Contains(a.View(), "Genre ▾") {
		t.Error("toolbar should show on the search screen")
	}
}

func TestSearchToolbarFollowsVisibleScreen(t *testing.T) {
	a := newTestApp(t, nil)
	a.press("tab", "enter")
	if !a.nav.Visible().Equal(nav.AnimeDetails) {
		t.Fatalf("setup: expected details, got %s", a.nav.Visible())
	}

	a.press("/")
	a.typeText("nar")
	a.press("enter", "f")

	if sel, _ := a.nav.Selected(); !sel.Equal(nav.Search) {
		t.Errorf("search should be selected, got %s", sel)
	}
	if !a.nav.Visible().Equal(nav.AnimeDetails) {
		t.Fatalf("details should stay visible, got %s", a.nav.Visible())
	}
	if a.toolbar.Open() {
		t.Error("toolbar should not open over the details screen")
	}
	out := a.View()
	if strings.Contains(out, "Genre ▾") {
		t.Error("toolbar should not render over the details screen")
	}
	if !strings.Contains(out, "Watch Now") {
		t.Error("details screen should still render")
	}

	a.press("X")
	if a.facets.Active() {
		t.Error("facet keys should not reach the hidden toolbar")
	}
}
