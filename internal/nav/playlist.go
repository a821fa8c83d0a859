package nav

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist key is not in the set.
var ErrPlaylistNotFound = errors.New("playlist not found")

// ErrPlaylistExists is returned when adding a playlist whose key is taken.
var ErrPlaylistExists = errors.New("playlist already exists")

// Playlist is a user-named collection. Key is its identity and never changes;
// Name is only a label.
type Playlist struct {
	Key  string
	Name string
}

// PlaylistSet holds the playlists shown in the sidebar, in insertion order.
type PlaylistSet struct {
	items []Playlist
}

// NewPlaylistSet creates a set from the given playlists. Entries with a
// duplicate key are dropped; an empty key falls back to the name.
func NewPlaylistSet(playlists ...Playlist) *PlaylistSet {
	s := &PlaylistSet{}
	for _, p := range playlists {
		if p.Key == "" {
			p.Key = p.Name
		}
		_ = s.AddWithKey(p.Key, p.Name)
	}
	return s
}

// Add creates a playlist with a fresh random key.
func (s *PlaylistSet) Add(name string) Playlist {
	p := Playlist{Key: uuid.NewString(), Name: strings.TrimSpace(name)}
	s.items = append(s.items, p)
	return p
}

// AddWithKey adds a playlist with a caller-chosen key.
func (s *PlaylistSet) AddWithKey(key, name string) error {
	if s.index(key) >= 0 {
		return ErrPlaylistExists
	}
	s.items = append(s.items, Playlist{Key: key, Name: strings.TrimSpace(name)})
	return nil
}

// Rename changes the label of the playlist with the given key.
func (s *PlaylistSet) Rename(key, name string) (Playlist, error) {
	i := s.index(key)
	if i < 0 {
		return Playlist{}, ErrPlaylistNotFound
	}
	s.items[i].Name = strings.TrimSpace(name)
	return s.items[i], nil
}

// Remove deletes the playlist with the given key.
func (s *PlaylistSet) Remove(key string) error {
	i := s.index(key)
	if i < 0 {
		return ErrPlaylistNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Get returns the playlist with the given key.
func (s *PlaylistSet) Get(key string) (Playlist, bool) {
	i := s.index(key)
	if i < 0 {
		return Playlist{}, false
	}
	return s.items[i], true
}

// All returns a copy of the playlists in order.
func (s *PlaylistSet) All() []Playlist {
	out := make([]Playlist, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of playlists.
func (s *PlaylistSet) Len() int {
	return len(s.items)
}

func (s *PlaylistSet) index(key string) int {
	for i, p := range s.items {
		if p.Key == key {
			return i
		}
	}
	return -1
}
