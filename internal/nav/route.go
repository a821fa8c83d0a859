package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownDestination is returned when an identity does not name a destination.
var ErrUnknownDestination = errors.New("unknown destination")

// ErrEmptyRoute is returned when a route has no frames.
var ErrEmptyRoute = errors.New("empty route")

const routeSep = "/"

var fixedByID = map[string]Destination{
	Home.ID():         Home,
	Trending.ID():     Trending,
	Genres.ID():       Genres,
	Schedule.ID():     Schedule,
	Search.ID():       Search,
	Settings.ID():     Settings,
	AnimeDetails.ID(): AnimeDetails,
	AnimeWatch.ID():   AnimeWatch,
}

// ParseDestination maps an identity back to its destination. Playlist names
// are looked up in playlists when it is non-nil; unknown keys keep the key as
// their label.
func ParseDestination(id string, playlists *PlaylistSet) (Destination, error) {
	if d, ok := fixedByID[id]; ok {
		return d, nil
	}
	if raw, ok := strings.CutPrefix(id, libraryPrefix); ok {
		for _, k := range LibraryKinds {
			if k.String() == raw {
				return LibrarySection(k), nil
			}
		}
		return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, id)
	}
	if key, ok := strings.CutPrefix(id, playlistPrefix); ok {
		if playlists != nil {
			if p, found := playlists.Get(key); found {
				return PlaylistDestination(p), nil
			}
		}
		return PlaylistDestination(Playlist{Key: key, Name: key}), nil
	}
	return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, id)
}

// FormatRoute renders a route as slash-separated, path-escaped identities.
func FormatRoute(route []Destination) string {
	parts := make([]string, len(route))
	for i, d := range route {
		parts[i] = url.PathEscape(d.ID())
	}
	return strings.Join(parts, routeSep)
}

// ParseRoute is the inverse of FormatRoute.
func ParseRoute(s string, playlists *PlaylistSet) ([]Destination, error) {
	s = strings.Trim(strings.TrimSpace(s), routeSep)
	if s == "" {
		return nil, ErrEmptyRoute
	}
	parts := strings.Split(s, routeSep)
	route := make([]Destination, 0, len(parts))
	for _, part := range parts {
		id, err := url.PathUnescape(part)
		if err != nil {
			return nil, fmt.Errorf("failed to unescape route segment %q: %w", part, err)
		}
		d, err := ParseDestination(id, playlists)
		if err != nil {
			return nil, err
		}
		route = append(route, d)
	}
	return route, nil
}

// CurrentRoute formats the navigator's route.
func (n *Navigator) CurrentRoute() string {
	return FormatRoute(n.Route())
}

// ApplyRoute selects the first frame of route and replaces the stack with
// the rest.
func (n *Navigator) ApplyRoute(route []Destination) error {
	if len(route) == 0 {
		return ErrEmptyRoute
	}
	n.state.Selected = route[0]
	n.state.HasSelection = true
	n.state.Stack = cloneStack(route[1:])
	return nil
}
