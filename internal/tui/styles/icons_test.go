package styles

import (
	"testing"

	"github.com/aki-app/aki/internal/nav"
)

func TestGlyphCoversDestinationIcons(t *testing.T) {
	dests := append([]nav.Destination{}, nav.MainDestinations...)
	dests = append(dests, nav.Search, nav.Settings, nav.AnimeDetails, nav.AnimeWatch, nav.PlaylistNamed("p"))
	for _, k := range nav.LibraryKinds {
		dests = append(dests, nav.LibrarySection(k))
	}

	for _, d := range dests {
		if got := Glyph(d.Icon()); got == "•" {
			t.Errorf("no glyph for %s (%s)", d.ID(), d.Icon())
		}
	}
}

func TestGlyphFallback(t *testing.T) {
	if got := Glyph(nav.Icon("unknown")); got != "•" {
		t.Errorf("Glyph(unknown) = %q, want fallback", got)
	}
}
