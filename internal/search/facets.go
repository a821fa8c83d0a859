package search

import (
	"slices"
	"strings"
)

// Facet names a toolbar menu in the search view.
type Facet int

const (
	FacetGenre Facet = iota
	FacetType
	FacetRating
	FacetStatus
)

// String returns the menu label.
func (f Facet) String() string {
	switch f {
	case FacetGenre:
		return "Genre"
	case FacetType:
		return "Type"
	case FacetRating:
		return "Rating"
	case FacetStatus:
		return "Status"
	default:
		return "Unknown"
	}
}

// Facets lists all toolbar menus in display order.
var Facets = []Facet{FacetGenre, FacetType, FacetRating, FacetStatus}

// Options returns the choices offered by f.
func (f Facet) Options() []string {
	switch f {
	case FacetGenre:
		return []string{"Action", "Comedy", "Drama"}
	case FacetType:
		return []string{"TV", "Movie", "OVA"}
	case FacetRating:
		return []string{RatingAll, "PG-13", "R"}
	case FacetStatus:
		return []string{"Currently Airing", "Finished Airing", "Not Yet Aired"}
	default:
		return nil
	}
}

// RatingAll is the default rating choice.
const RatingAll = "All"

// Selection tracks the toolbar state. Genre, type and status are multi-select;
// rating is a single choice.
type Selection struct {
	genres   map[string]bool
	types    map[string]bool
	statuses map[string]bool
	rating   string
}

// NewSelection returns an empty selection with rating All.
func NewSelection() *Selection {
	return &Selection{
		genres:   make(map[string]bool),
		types:    make(map[string]bool),
		statuses: make(map[string]bool),
		rating:   RatingAll,
	}
}

// Toggle flips option within f. For the rating facet it selects the option.
// Unknown options are ignored and false is returned.
func (s *Selection) Toggle(f Facet, option string) bool {
	if !slices.Contains(f.Options(), option) {
		return false
	}
	if f == FacetRating {
		s.rating = option
		return true
	}
	set := s.set(f)
	if set[option] {
		delete(set, option)
	} else {
		set[option] = true
	}
	return true
}

// Selected returns the chosen options of f in option order.
func (s *Selection) Selected(f Facet) []string {
	if f == FacetRating {
		return []string{s.rating}
	}
	set := s.set(f)
	var out []string
	for _, o := range f.Options() {
		if set[o] {
			out = append(out, o)
		}
	}
	return out
}

// IsSelected reports whether option is chosen in f.
func (s *Selection) IsSelected(f Facet, option string) bool {
	if f == FacetRating {
		return s.rating == option
	}
	return s.set(f)[option]
}

// Rating returns the rating choice.
func (s *Selection) Rating() string {
	return s.rating
}

// Reset clears every facet.
func (s *Selection) Reset() {
	*s = *NewSelection()
}

// Active reports whether any facet differs from its default.
func (s *Selection) Active() bool {
	return len(s.genres)+len(s.types)+len(s.statuses) > 0 || s.rating != RatingAll
}

// Summary renders the non-default facets, e.g. "Genre: Action, Drama · Rating: R".
func (s *Selection) Summary() string {
	var parts []string
	for _, f := range Facets {
		if f == FacetRating {
			if s.rating != RatingAll {
				parts = append(parts, f.String()+": "+s.rating)
			}
			continue
		}
		if sel := s.Selected(f); len(sel) > 0 {
			parts = append(parts, f.String()+": "+strings.Join(sel, ", "))
		}
	}
	return strings.Join(parts, " · ")
}

func (s *Selection) set(f Facet) map[string]bool {
	switch f {
	case FacetGenre:
		return s.genres
	case FacetType:
		return s.types
	default:
		return s.statuses
	}
}
