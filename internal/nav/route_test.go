package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDestinationRoundTrip(t *testing.T) {
	all := []Destination{Home, Trending, Genres, Schedule, Search, Settings, AnimeDetails, AnimeWatch}
	for _, k := range LibraryKinds {
		all = append(all, LibrarySection(k))
	}

	for _, d := range all {
		got, err := ParseDestination(d.ID(), nil)
		require.NoError(t, err, d.ID())
		assert.Equal(t, d, got)
	}
}

func TestParseDestinationPlaylistLookup(t *testing.T) {
	set := NewPlaylistSet(Playlist{Key: "abc", Name: "Favourites"})

	got, err := ParseDestination("playlist-abc", set)
	require.NoError(t, err)
	assert.Equal(t, "Favourites", got.Title())

	got, err = ParseDestination("playlist-unknown", set)
	require.NoError(t, err)
	assert.Equal(t, "unknown", got.Title())
}

func TestParseDestinationUnknown(t *testing.T) {
	for _, id := range []string{"", "nope", "library-Anime", "HOME"} {
		_, err := ParseDestination(id, nil)
		assert.True(t, errors.Is(err, ErrUnknownDestination), "id %q: %v", id, err)
	}
}

func TestRouteRoundTrip(t *testing.T) {
	route := []Destination{
		PlaylistNamed("My Top 25 Rated"),
		AnimeDetails,
		AnimeWatch,
	}

	s := FormatRoute(route)
	assert.Equal(t, "playlist-My%20Top%2025%20Rated/anime-details/anime-watch", s)

	got, err := ParseRoute(s, nil)
	require.NoError(t, err)
	assert.Equal(t, route, got)
}

func TestRouteEscapesSlash(t *testing.T) {
	route := []Destination{PlaylistNamed("a/b")}
	got, err := ParseRoute(FormatRoute(route), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "playlist-a/b", got[0].ID())
}

func TestParseRouteEmpty(t *testing.T) {
	_, err := ParseRoute("  / ", nil)
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestApplyRoute(t *testing.T) {
	n := New()
	route, err := ParseRoute("home/anime-details/anime-watch", nil)
	require.NoError(t, err)
	require.NoError(t, n.ApplyRoute(route))

	sel, _ := n.Selected()
	assert.True(t, sel.Equal(Home))
	assert.Equal(t, []Destination{AnimeDetails, AnimeWatch}, n.Stack())
	assert.Equal(t, "home/anime-details/anime-watch", n.CurrentRoute())

	assert.ErrorIs(t, n.ApplyRoute(nil), ErrEmptyRoute)
}
