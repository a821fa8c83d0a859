package views

import (
	"github.com/aki-app/aki/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Coordinator manages view lifecycle and delegates to the visible view.
type Coordinator struct {
	registry    *Registry
	current     nav.Destination
	currentView ViewHandler
	depth       int
	entered     bool
}

// NewCoordinator creates a new view coordinator with the default registry.
func NewCoordinator(ctx *Context) *Coordinator {
	return NewCoordinatorWithRegistry(DefaultRegistry(ctx))
}

// NewCoordinatorWithRegistry creates a coordinator over a custom registry.
func NewCoordinatorWithRegistry(reg *Registry) *Coordinator {
	return &Coordinator{registry: reg}
}

// Registry returns the registry.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// CurrentView returns the active view.
func (c *Coordinator) CurrentView() ViewHandler {
	return c.currentView
}

// Current returns the destination being shown.
func (c *Coordinator) Current() nav.Destination {
	return c.current
}

// Sync makes dest, shown at the given stack depth, the visible destination.
// OnExit and OnEnter run when the destination or its depth changes, so a
// repeated push of the same destination is entered again. It reports whether
// a switch happened.
func (c *Coordinator) Sync(dest nav.Destination, depth int) (tea.Cmd, bool) {
	if c.entered && c.current.Equal(dest) && c.depth == depth {
		return nil, false
	}

	if c.currentView != nil {
		c.currentView.OnExit()
	}

	view, ok := c.registry.GetView(dest.Kind())
	c.current = dest
	c.depth = depth
	c.entered = true
	if !ok {
		c.currentView = nil
		return nil, true
	}

	c.currentView = view
	return view.OnEnter(dest), true
}

// HandleKey delegates key handling to the current view.
// Returns the command and whether the key was consumed.
func (c *Coordinator) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c.currentView == nil {
		return nil, false
	}
	return c.currentView.HandleKey(msg)
}

// HandleSelect delegates selection to the current view.
func (c *Coordinator) HandleSelect() tea.Cmd {
	if c.currentView == nil {
		return nil
	}
	return c.currentView.HandleSelect()
}

// HandleBack delegates back/escape to the current view.
func (c *Coordinator) HandleBack() (tea.Cmd, bool) {
	if c.currentView == nil {
		return nil, false
	}
	return c.currentView.HandleBack()
}

// Render renders the current view.
func (c *Coordinator) Render(width, height int) string {
	if c.currentView == nil {
		return ""
	}
	return c.currentView.Render(width, height)
}

// Hints returns the current view's status bar hints.
func (c *Coordinator) Hints() [][2]string {
	if c.currentView == nil {
		return nil
	}
	return c.currentView.Hints()
}
