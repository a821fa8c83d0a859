package styles

import "github.com/aki-app/aki/internal/nav"

var glyphs = map[nav.Icon]string{
	nav.IconHouse:    "🏠",
	nav.IconTrending: "📈",
	nav.IconList:     "☰",
	nav.IconCalendar: "📅",
	nav.IconSearch:   "🔍",
	nav.IconInfo:     "ℹ",
	nav.IconPlay:     "▶",
	nav.IconGear:     "⚙",
	nav.IconClock:    "🕘",
	nav.IconFilm:     "🎬",
	nav.IconTV:       "📺",
	nav.IconStar:     "★",
	nav.IconProfile:  "👤",
}

// Glyph returns the terminal glyph for an icon token, or "•" for tokens
// without one.
func Glyph(icon nav.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
