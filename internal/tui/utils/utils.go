// Package utils provides shared utility functions for the TUI.
package utils

import "github.com/mattn/go-runewidth"

// Ellipsis is appended to truncated strings.
const Ellipsis = "…"

// TruncateString truncates a string to a given cell width and adds an
// ellipsis if truncated. Wide runes (CJK titles, emoji) count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight pads s with spaces to the given cell width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
