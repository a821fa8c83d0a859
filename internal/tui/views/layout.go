package views

import (
	"github.com/aki-app/aki/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// screen renders a navigation title above a body centered in the
// remaining space.
func screen(title, body string, width, height int) string {
	heading := styles.Title.Render(title)
	rest := height - lipgloss.Height(heading) - 1
	if rest < 1 {
		rest = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		lipgloss.Place(width, rest, lipgloss.Center, lipgloss.Center, body),
	)
}

// withButton stacks a placeholder label over a primary action.
func withButton(label, button string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Placeholder.Render(label),
		"",
		styles.Button.Render(button),
	)
}
