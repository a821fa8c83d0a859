package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	n := New()

	sel, ok := n.Selected()
	require.True(t, ok)
	assert.True(t, sel.Equal(Home))
	assert.Empty(t, n.Stack())
	assert.Empty(t, n.SearchQuery())
	assert.True(t, n.Expanded(SectionLibrary))
	assert.True(t, n.Expanded(SectionPlaylists))
	assert.False(t, n.ClearsStackOnSelect())
	assert.True(t, n.Visible().Equal(Home))
}

func TestFocusSearchOverridesSelection(t *testing.T) {
	n := New()
	n.SelectSidebarItem(Search)
	n.SelectSidebarItem(Trending)
	n.SelectSidebarItem(LibrarySection(Movies))
	n.SelectSidebarItem(PlaylistNamed("My Top 25 Rated"))

	n.FocusSearch()
	sel, _ := n.Selected()
	assert.True(t, sel.Equal(Search))

	n.FocusSearch()
	sel, _ = n.Selected()
	assert.True(t, sel.Equal(Search), "focusing twice keeps Search")
}

func TestPushNeverMutatesSelection(t *testing.T) {
	n := New()
	n.SelectSidebarItem(Home)
	n.Push(AnimeDetails)
	n.Push(AnimeWatch)

	assert.Equal(t, []Destination{AnimeDetails, AnimeWatch}, n.Stack())
	sel, _ := n.Selected()
	assert.True(t, sel.Equal(Home))
}

func TestPushKeepsDuplicates(t *testing.T) {
	n := New()
	n.Push(AnimeDetails)
	n.Push(AnimeDetails)
	assert.Equal(t, 2, n.Depth())
}

func TestToggleSectionIsInvolution(t *testing.T) {
	n := New()
	before := n.Expanded(SectionLibrary)

	n.ToggleSection(SectionLibrary)
	assert.Equal(t, !before, n.Expanded(SectionLibrary))
	assert.True(t, n.Expanded(SectionPlaylists), "other section untouched")

	n.ToggleSection(SectionLibrary)
	assert.Equal(t, before, n.Expanded(SectionLibrary))
}

func TestVisibleFollowsStack(t *testing.T) {
	n := New()
	assert.True(t, n.Visible().Equal(Home))

	n.Push(AnimeDetails)
	assert.True(t, n.Visible().Equal(AnimeDetails))

	n.Push(AnimeWatch)
	assert.True(t, n.Visible().Equal(AnimeWatch))

	_, ok := n.Pop()
	require.True(t, ok)
	assert.True(t, n.Visible().Equal(AnimeDetails))
}

func TestVisibleFollowsSelectionWhenStackEmpty(t *testing.T) {
	n := New()
	n.SelectSidebarItem(LibrarySection(TvSeries))
	assert.True(t, n.Visible().Equal(LibrarySection(TvSeries)))
}

func TestResolveVisibleView(t *testing.T) {
	trending := Trending

	tests := []struct {
		name     string
		selected *Destination
		stack    []Destination
		want     Destination
	}{
		{"nothing", nil, nil, Home},
		{"selection only", &trending, nil, Trending},
		{"stack wins", &trending, []Destination{AnimeDetails}, AnimeDetails},
		{"top of stack", nil, []Destination{AnimeDetails, AnimeWatch}, AnimeWatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVisibleView(tt.selected, tt.stack)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestSelectKeepsStackByDefault(t *testing.T) {
	n := New()
	n.Push(AnimeDetails)
	n.SelectSidebarItem(Trending)

	assert.Equal(t, 1, n.Depth())
	assert.True(t, n.Visible().Equal(AnimeDetails))
}

func TestSelectClearsStackWhenConfigured(t *testing.T) {
	n := New(WithClearStackOnSelect(true))
	n.Push(AnimeDetails)
	n.Push(AnimeWatch)
	n.SelectSidebarItem(Trending)

	assert.Zero(t, n.Depth())
	assert.True(t, n.Visible().Equal(Trending))
}

func TestClearSelectionFallsBackToHome(t *testing.T) {
	n := New(WithSelection(Genres))
	n.ClearSelection()

	_, ok := n.Selected()
	assert.False(t, ok)
	assert.True(t, n.Visible().Equal(Home))
	assert.Equal(t, []string{"Home"}, n.Breadcrumbs())
}

func TestPopOnEmptyStack(t *testing.T) {
	n := New()
	_, ok := n.Pop()
	assert.False(t, ok)
	assert.Zero(t, n.Depth())
}

func TestPopTo(t *testing.T) {
	n := New()
	n.Push(AnimeDetails)
	n.Push(AnimeWatch)
	n.Push(Settings)

	n.PopTo(5)
	assert.Equal(t, 3, n.Depth(), "depth past the end is a no-op")

	n.PopTo(1)
	assert.Equal(t, []Destination{AnimeDetails}, n.Stack())

	n.PopTo(-1)
	assert.Zero(t, n.Depth())
}

func TestOpenProfile(t *testing.T) {
	n := New()
	n.OpenProfile()

	sel, _ := n.Selected()
	assert.True(t, sel.Equal(Settings))
	assert.Equal(t, []Destination{Settings}, n.Stack())
	assert.Equal(t, []string{"Settings", "Settings"}, n.Breadcrumbs())
}

func TestRenamePlaylistKeepsIdentity(t *testing.T) {
	p := Playlist{Key: "k1", Name: "Old"}
	n := New(WithSelection(PlaylistDestination(p)))
	n.Push(PlaylistDestination(p))
	n.Push(AnimeDetails)

	renamed := n.RenamePlaylist("k1", "New")
	assert.Equal(t, 2, renamed)

	sel, _ := n.Selected()
	assert.Equal(t, "playlist-k1", sel.ID())
	assert.Equal(t, "New", sel.Title())
	assert.Equal(t, []string{"New", "New", "Anime Details"}, n.Breadcrumbs())
}

func TestForget(t *testing.T) {
	p := PlaylistNamed("gone")
	n := New(WithSelection(p))
	n.Push(p)
	n.Push(AnimeDetails)

	n.Forget(p)

	sel, _ := n.Selected()
	assert.True(t, sel.Equal(Home))
	assert.Equal(t, []Destination{AnimeDetails}, n.Stack())
}

func TestSnapshotIsIndependent(t *testing.T) {
	n := New()
	n.Push(AnimeDetails)
	snap := n.Snapshot()

	n.Push(AnimeWatch)
	n.SetSearchQuery("naruto")
	assert.Len(t, snap.Stack, 1)
	assert.Empty(t, snap.SearchQuery)

	n.Restore(snap)
	assert.Equal(t, []Destination{AnimeDetails}, n.Stack())
	assert.Empty(t, n.SearchQuery())

	snap.Stack[0] = Settings
	assert.True(t, n.Visible().Equal(AnimeDetails), "restore copies the stack")
}

func TestRouteAndBreadcrumbs(t *testing.T) {
	n := New(WithSelection(LibrarySection(Movies)))
	n.Push(AnimeDetails)
	n.Push(AnimeWatch)

	assert.Equal(t, []Destination{LibrarySection(Movies), AnimeDetails, AnimeWatch}, n.Route())
	assert.Equal(t, []string{"Movies", "Anime Details", "Watch"}, n.Breadcrumbs())
}
