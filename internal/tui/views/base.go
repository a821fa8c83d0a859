package views

import (
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

// Context is the shared state views read from.
type Context struct {
	Nav       *nav.Navigator
	Playlists *nav.PlaylistSet
	Facets    *search.Selection
	Profile   string
}

// BaseView provides common functionality for all views.
// Views embed this struct to get shared helpers.
type BaseView struct {
	*Context
	kind   nav.Kind
	dest   nav.Destination
	Cursor int
}

// NewBaseView creates a new BaseView for a destination kind.
func NewBaseView(ctx *Context, kind nav.Kind) *BaseView {
	return &BaseView{Context: ctx, kind: kind}
}

// Kind returns the destination kind the view renders.
func (b *BaseView) Kind() nav.Kind {
	return b.kind
}

// Destination returns the destination the view was entered for.
func (b *BaseView) Destination() nav.Destination {
	return b.dest
}

// OnEnter records the destination and resets the cursor.
func (b *BaseView) OnEnter(dest nav.Destination) tea.Cmd {
	b.dest = dest
	b.Cursor = 0
	return nil
}

// OnExit is a no-op by default.
func (b *BaseView) OnExit() {}

// HandleKey consumes nothing by default.
func (b *BaseView) HandleKey(tea.KeyMsg) (tea.Cmd, bool) {
	return nil, false
}

// HandleSelect does nothing by default.
func (b *BaseView) HandleSelect() tea.Cmd {
	return nil
}

// HandleBack leaves back navigation to the stack by default.
func (b *BaseView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}

// Hints returns no view-specific hints by default.
func (b *BaseView) Hints() [][2]string {
	return nil
}

// MoveCursor moves the cursor by delta within [0, count).
func (b *BaseView) MoveCursor(delta, count int) {
	b.Cursor += delta
	if b.Cursor >= count {
		b.Cursor = count - 1
	}
	if b.Cursor < 0 {
		b.Cursor = 0
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
