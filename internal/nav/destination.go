// Package nav defines the addressable destinations of the aki shell and the
// navigation state that moves between them.
//
// The sidebar selection and the drill-down stack are two slots of a single
// Navigator. The visible screen is always derived from both through
// ResolveVisibleView, so the renderer has one source of truth.
package nav

// Kind identifies the variant of a Destination.
type Kind int

const (
	KindHome Kind = iota
	KindTrending
	KindGenres
	KindSchedule
	KindSearch
	KindSettings
	KindAnimeDetails
	KindAnimeWatch
	KindLibrary
	KindPlaylist
)

// LibraryKind is the closed set of library sections.
type LibraryKind int

const (
	RecentlyWatched LibraryKind = iota
	Movies
	TvSeries
)

// LibraryKinds lists library sections in sidebar order.
var LibraryKinds = []LibraryKind{RecentlyWatched, Movies, TvSeries}

// String returns the raw name used in labels and identities.
func (k LibraryKind) String() string {
	switch k {
	case RecentlyWatched:
		return "Recently Watched"
	case Movies:
		return "Movies"
	case TvSeries:
		return "TV Series"
	default:
		return "Unknown"
	}
}

// Icon returns the icon token for the library section.
func (k LibraryKind) Icon() Icon {
	switch k {
	case RecentlyWatched:
		return IconClock
	case Movies:
		return IconFilm
	default:
		return IconTV
	}
}

// Icon is a symbolic icon name. The renderer decides how to draw it.
type Icon string

const (
	IconHouse    Icon = "house"
	IconTrending Icon = "chart.line.uptrend.xyaxis"
	IconList     Icon = "list.bullet"
	IconCalendar Icon = "calendar"
	IconSearch   Icon = "magnifyingglass"
	IconInfo     Icon = "info.circle"
	IconPlay     Icon = "play.circle"
	IconGear     Icon = "gear"
	IconClock    Icon = "clock"
	IconFilm     Icon = "film"
	IconTV       Icon = "tv"
	IconStar     Icon = "star.fill"
	IconProfile  Icon = "person.circle.fill"
)

// Destination is any screen reachable in the app.
// The zero value is Home.
type Destination struct {
	kind     Kind
	library  LibraryKind
	playlist Playlist
}

// Fixed destinations.
var (
	Home         = Destination{kind: KindHome}
	Trending     = Destination{kind: KindTrending}
	Genres       = Destination{kind: KindGenres}
	Schedule     = Destination{kind: KindSchedule}
	Search       = Destination{kind: KindSearch}
	Settings     = Destination{kind: KindSettings}
	AnimeDetails = Destination{kind: KindAnimeDetails}
	AnimeWatch   = Destination{kind: KindAnimeWatch}
)

// MainDestinations are the top sidebar entries, in order.
var MainDestinations = []Destination{Home, Trending, Genres, Schedule}

// LibrarySection returns the destination for a library section.
func LibrarySection(k LibraryKind) Destination {
	return Destination{kind: KindLibrary, library: k}
}

// PlaylistNamed returns a playlist destination whose key is its name.
func PlaylistNamed(name string) Destination {
	return PlaylistDestination(Playlist{Key: name, Name: name})
}

// PlaylistDestination returns the destination for p.
func PlaylistDestination(p Playlist) Destination {
	return Destination{kind: KindPlaylist, playlist: p}
}

// Kind returns the variant.
func (d Destination) Kind() Kind {
	return d.kind
}

// Library returns the library section and whether d is one.
func (d Destination) Library() (LibraryKind, bool) {
	return d.library, d.kind == KindLibrary
}

// Playlist returns the playlist payload and whether d is one.
func (d Destination) Playlist() (Playlist, bool) {
	return d.playlist, d.kind == KindPlaylist
}

// ID returns the stable identity key used for selection and diffing.
func (d Destination) ID() string {
	switch d.kind {
	case KindHome:
		return "home"
	case KindTrending:
		return "trending"
	case KindGenres:
		return "genres"
	case KindSchedule:
		return "schedule"
	case KindSearch:
		return "search"
	case KindSettings:
		return "settings"
	case KindAnimeDetails:
		return "anime-details"
	case KindAnimeWatch:
		return "anime-watch"
	case KindLibrary:
		return libraryPrefix + d.library.String()
	case KindPlaylist:
		return playlistPrefix + d.playlist.Key
	default:
		return ""
	}
}

const (
	libraryPrefix  = "library-"
	playlistPrefix = "playlist-"
)

// Equal reports whether d and o have the same identity.
func (d Destination) Equal(o Destination) bool {
	return d.ID() == o.ID()
}

// Title returns the display label.
func (d Destination) Title() string {
	switch d.kind {
	case KindHome:
		return "Home"
	case KindTrending:
		return "Trending"
	case KindGenres:
		return "Genres"
	case KindSchedule:
		return "Schedule"
	case KindSearch:
		return "Search"
	case KindSettings:
		return "Settings"
	case KindAnimeDetails:
		return "Anime Details"
	case KindAnimeWatch:
		return "Watch"
	case KindLibrary:
		return d.library.String()
	case KindPlaylist:
		return d.playlist.Name
	default:
		return ""
	}
}

// Icon returns the icon token.
func (d Destination) Icon() Icon {
	switch d.kind {
	case KindHome:
		return IconHouse
	case KindTrending:
		return IconTrending
	case KindGenres:
		return IconList
	case KindSchedule:
		return IconCalendar
	case KindSearch:
		return IconSearch
	case KindSettings:
		return IconGear
	case KindAnimeDetails:
		return IconInfo
	case KindAnimeWatch:
		return IconPlay
	case KindLibrary:
		return d.library.Icon()
	default:
		return IconStar
	}
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return d.ID()
}
