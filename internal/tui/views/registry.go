package views

import "github.com/aki-app/aki/internal/nav"

// Registry holds one view per destination kind.
type Registry struct {
	views map[nav.Kind]ViewHandler
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[nav.Kind]ViewHandler),
	}
}

// RegisterView adds a view to the registry, replacing any view for the
// same kind.
func (r *Registry) RegisterView(view ViewHandler) {
	r.views[view.Kind()] = view
}

// GetView returns the view for a destination kind.
func (r *Registry) GetView(kind nav.Kind) (ViewHandler, bool) {
	view, ok := r.views[kind]
	return view, ok
}

// Len returns the number of registered views.
func (r *Registry) Len() int {
	return len(r.views)
}

// DefaultRegistry creates a registry with a view for every destination kind.
func DefaultRegistry(ctx *Context) *Registry {
	r := NewRegistry()

	r.RegisterView(NewHomeView(ctx))
	r.RegisterView(NewPlaceholderView(ctx, nav.KindTrending))
	r.RegisterView(NewPlaceholderView(ctx, nav.KindGenres))
	r.RegisterView(NewPlaceholderView(ctx, nav.KindSchedule))
	r.RegisterView(NewSearchView(ctx))
	r.RegisterView(NewSettingsView(ctx))
	r.RegisterView(NewDetailsView(ctx))
	r.RegisterView(NewWatchView(ctx))
	r.RegisterView(NewLibraryView(ctx))
	r.RegisterView(NewPlaylistView(ctx))

	return r
}
