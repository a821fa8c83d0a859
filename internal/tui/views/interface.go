package views

import (
	"github.com/aki-app/aki/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewHandler defines the contract for a content screen.
// Each destination kind (Home, Search, Library, etc.) has one handler.
type ViewHandler interface {
	// Kind returns the destination kind the view renders.
	Kind() nav.Kind

	// HandleKey processes keyboard input for this view.
	// Returns the command to execute and whether the key was consumed.
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// HandleSelect processes Enter for this view.
	HandleSelect() tea.Cmd

	// HandleBack processes Escape for this view.
	// Returns the command to execute and whether the view handled it.
	// Unhandled back presses pop the navigation stack.
	HandleBack() (cmd tea.Cmd, handled bool)

	// OnEnter is called when the view becomes visible for dest.
	OnEnter(dest nav.Destination) tea.Cmd

	// OnExit is called when the view stops being visible.
	OnExit()

	// Render returns the view's content.
	Render(width, height int) string

	// Hints returns {key, description} pairs for the status bar.
	Hints() [][2]string
}
