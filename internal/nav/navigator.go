package nav

// Section is a collapsible sidebar section.
type Section int

const (
	SectionLibrary Section = iota
	SectionPlaylists
)

// String returns the section header label.
func (s Section) String() string {
	switch s {
	case SectionLibrary:
		return "Library"
	case SectionPlaylists:
		return "Playlists"
	default:
		return "Unknown"
	}
}

// State is a value copy of everything the navigator tracks.
// Stack is owned by the copy.
type State struct {
	Selected          Destination
	HasSelection      bool
	Stack             []Destination
	SearchQuery       string
	LibraryExpanded   bool
	PlaylistsExpanded bool
}

// SelectedPtr returns the selection as an optional value.
func (s State) SelectedPtr() *Destination {
	if !s.HasSelection {
		return nil
	}
	d := s.Selected
	return &d
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClearStackOnSelect makes SelectSidebarItem restart the stack.
func WithClearStackOnSelect(clear bool) Option {
	return func(n *Navigator) {
		n.clearOnSelect = clear
	}
}

// WithSectionsExpanded sets the initial disclosure flags.
func WithSectionsExpanded(library, playlists bool) Option {
	return func(n *Navigator) {
		n.state.LibraryExpanded = library
		n.state.PlaylistsExpanded = playlists
	}
}

// WithSelection sets the initial sidebar selection.
func WithSelection(d Destination) Option {
	return func(n *Navigator) {
		n.state.Selected = d
		n.state.HasSelection = true
	}
}

// Navigator owns the session navigation state. Every mutation goes through
// its methods; each method leaves selection and stack consistent before it
// returns. It is not safe for concurrent use and is meant to be driven from
// a single update loop.
type Navigator struct {
	state         State
	clearOnSelect bool
}

// New creates a navigator with Home selected, an empty stack and both
// sections expanded, then applies opts.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		state: State{
			Selected:          Home,
			HasSelection:      true,
			LibraryExpanded:   true,
			PlaylistsExpanded: true,
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Selected returns the sidebar selection, if any.
func (n *Navigator) Selected() (Destination, bool) {
	return n.state.Selected, n.state.HasSelection
}

// Stack returns a copy of the drill-down stack, bottom first.
func (n *Navigator) Stack() []Destination {
	return cloneStack(n.state.Stack)
}

// Depth returns the number of stack entries.
func (n *Navigator) Depth() int {
	return len(n.state.Stack)
}

// SearchQuery returns the sidebar search text.
func (n *Navigator) SearchQuery() string {
	return n.state.SearchQuery
}

// Expanded reports whether a sidebar section shows its children.
func (n *Navigator) Expanded(s Section) bool {
	switch s {
	case SectionLibrary:
		return n.state.LibraryExpanded
	case SectionPlaylists:
		return n.state.PlaylistsExpanded
	default:
		return false
	}
}

// ClearsStackOnSelect reports the selection policy in effect.
func (n *Navigator) ClearsStackOnSelect() bool {
	return n.clearOnSelect
}

// SelectSidebarItem makes d the sidebar selection. The stack is left alone
// unless the navigator was built WithClearStackOnSelect(true).
func (n *Navigator) SelectSidebarItem(d Destination) {
	n.state.Selected = d
	n.state.HasSelection = true
	if n.clearOnSelect {
		n.state.Stack = nil
	}
}

// ClearSelection removes the sidebar selection. Visible falls back to Home.
func (n *Navigator) ClearSelection() {
	n.state.Selected = Destination{}
	n.state.HasSelection = false
}

// FocusSearch selects Search. Calling it repeatedly has no further effect.
func (n *Navigator) FocusSearch() {
	if n.state.HasSelection && n.state.Selected.Equal(Search) {
		return
	}
	n.SelectSidebarItem(Search)
}

// SetSearchQuery replaces the search text.
func (n *Navigator) SetSearchQuery(q string) {
	n.state.SearchQuery = q
}

// Push appends d to the stack. Duplicates are kept.
func (n *Navigator) Push(d Destination) {
	n.state.Stack = append(n.state.Stack, d)
}

// Pop removes the top stack entry. It returns false on an empty stack.
func (n *Navigator) Pop() (Destination, bool) {
	if len(n.state.Stack) == 0 {
		return Destination{}, false
	}
	top := n.state.Stack[len(n.state.Stack)-1]
	n.state.Stack = n.state.Stack[:len(n.state.Stack)-1]
	return top, true
}

// PopTo truncates the stack to depth entries. Depths outside the stack are
// clamped.
func (n *Navigator) PopTo(depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(n.state.Stack) {
		return
	}
	n.state.Stack = n.state.Stack[:depth]
}

// ClearStack empties the stack.
func (n *Navigator) ClearStack() {
	n.state.Stack = nil
}

// OpenProfile is the sidebar footer action: it pushes Settings and selects it.
func (n *Navigator) OpenProfile() {
	n.Push(Settings)
	n.state.Selected = Settings
	n.state.HasSelection = true
}

// ToggleSection flips the disclosure flag for s.
func (n *Navigator) ToggleSection(s Section) {
	switch s {
	case SectionLibrary:
		n.state.LibraryExpanded = !n.state.LibraryExpanded
	case SectionPlaylists:
		n.state.PlaylistsExpanded = !n.state.PlaylistsExpanded
	}
}

// RenamePlaylist relabels every reference to the playlist with the given key
// and returns how many were updated. Identities do not change.
func (n *Navigator) RenamePlaylist(key, name string) int {
	renamed := 0
	relabel := func(d *Destination) {
		if p, ok := d.Playlist(); ok && p.Key == key {
			p.Name = name
			*d = PlaylistDestination(p)
			renamed++
		}
	}
	if n.state.HasSelection {
		relabel(&n.state.Selected)
	}
	for i := range n.state.Stack {
		relabel(&n.state.Stack[i])
	}
	return renamed
}

// Forget drops every reference to d: the selection falls back to Home and
// matching stack entries are removed.
func (n *Navigator) Forget(d Destination) {
	if n.state.HasSelection && n.state.Selected.Equal(d) {
		n.state.Selected = Home
	}
	kept := n.state.Stack[:0]
	for _, e := range n.state.Stack {
		if !e.Equal(d) {
			kept = append(kept, e)
		}
	}
	n.state.Stack = kept
}

// Visible returns the destination the content pane shows.
func (n *Navigator) Visible() Destination {
	return ResolveVisibleView(n.state.SelectedPtr(), n.state.Stack)
}

// Route returns the unified route: the root frame followed by the stack.
// The root is the sidebar selection, or Home when nothing is selected.
func (n *Navigator) Route() []Destination {
	root := Home
	if n.state.HasSelection {
		root = n.state.Selected
	}
	route := make([]Destination, 0, len(n.state.Stack)+1)
	route = append(route, root)
	return append(route, n.state.Stack...)
}

// Breadcrumbs returns the titles of the route.
func (n *Navigator) Breadcrumbs() []string {
	route := n.Route()
	titles := make([]string, len(route))
	for i, d := range route {
		titles[i] = d.Title()
	}
	return titles
}

// Snapshot returns a copy of the current state.
func (n *Navigator) Snapshot() State {
	s := n.state
	s.Stack = cloneStack(n.state.Stack)
	return s
}

// Restore replaces the current state with s.
func (n *Navigator) Restore(s State) {
	s.Stack = cloneStack(s.Stack)
	n.state = s
}

// ResolveVisibleView picks the destination to render. The top of a non-empty
// stack wins, then the selection, then Home.
func ResolveVisibleView(selected *Destination, stack []Destination) Destination {
	if len(stack) > 0 {
		return stack[len(stack)-1]
	}
	if selected != nil {
		return *selected
	}
	return Home
}

func cloneStack(stack []Destination) []Destination {
	if len(stack) == 0 {
		return nil
	}
	out := make([]Destination, len(stack))
	copy(out, stack)
	return out
}
