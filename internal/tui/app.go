// Package tui provides the terminal shell for aki: a sidebar of
// destinations, a content pane showing the visible destination, and a
// status bar.
package tui

import (
	"fmt"

	"github.com/aki-app/aki/internal/config"
	"github.com/aki-app/aki/internal/logging"
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/search"
	"github.com/aki-app/aki/internal/tui/components"
	"github.com/aki-app/aki/internal/tui/views"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a new App.
type Options struct {
	Config *config.Config
	Logger *logging.Logger

	// ConfigPath is where playlist changes are saved. Empty disables saving.
	ConfigPath string

	// Route, when set, is opened at launch instead of the configured start
	// destination, e.g. "home/anime-details".
	Route string

	Clipboard Clipboard
	Notifier  Notifier
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config     *config.Config
	configPath string
	logger     *logging.Logger
	clipboard  Clipboard
	notifier   Notifier

	// Navigation state
	nav       *nav.Navigator
	playlists *nav.PlaylistSet
	facets    *search.Selection

	// Views
	viewCtx     *views.Context
	coordinator *views.Coordinator

	// UI Components
	sidebar     *components.SidebarModel
	toolbar     *components.ToolbarModel
	help        *components.HelpModel
	prompt      *components.PromptModel
	commandLine *components.CommandLineModel

	// Search field state
	searchInput textinput.Model
	searching   bool

	// Input state
	keymap      Keymap
	keyState    KeyState
	focusedPane components.Pane
	showHelp    bool

	// Viewport for the scrollable content pane
	viewport      viewport.Model
	viewportReady bool

	// UI state
	statusMsg string
	statusErr bool
	width     int
	height    int
}

// NewApp creates a new App from the configuration. It fails when the
// configured start destination or the requested route cannot be resolved.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	playlists := nav.NewPlaylistSet()
	for _, p := range cfg.Playlists {
		if err := playlists.AddWithKey(p.Key(), p.Name); err != nil {
			return nil, fmt.Errorf("failed to load playlist %q: %w", p.Name, err)
		}
	}

	navOpts := []nav.Option{
		nav.WithClearStackOnSelect(cfg.Navigation.ClearStackOnSelect),
		nav.WithSectionsExpanded(cfg.UI.LibraryExpanded, cfg.UI.PlaylistsExpanded),
	}
	if cfg.UI.StartDestination != "" {
		start, err := nav.ParseDestination(cfg.UI.StartDestination, playlists)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve start destination: %w", err)
		}
		navOpts = append(navOpts, nav.WithSelection(start))
	}
	navigator := nav.New(navOpts...)

	if opts.Route != "" {
		route, err := nav.ParseRoute(opts.Route, playlists)
		if err != nil {
			return nil, fmt.Errorf("failed to parse route: %w", err)
		}
		if err := navigator.ApplyRoute(route); err != nil {
			return nil, fmt.Errorf("failed to open route: %w", err)
		}
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = DesktopNotifier{}
	}

	keymap := DefaultKeymap()
	keymap.VimMode = cfg.UI.VimMode

	searchInput := textinput.New()
	searchInput.Placeholder = "Search"
	searchInput.CharLimit = 100
	searchInput.Width = 20
	searchInput.SetValue(navigator.SearchQuery())

	facets := search.NewSelection()
	viewCtx := &views.Context{
		Nav:       navigator,
		Playlists: playlists,
		Facets:    facets,
		Profile:   cfg.Profile.Name,
	}

	app := &App{
		config:      cfg,
		configPath:  opts.ConfigPath,
		logger:      logger.WithComponent("tui"),
		clipboard:   clip,
		notifier:    notifier,
		nav:         navigator,
		playlists:   playlists,
		facets:      facets,
		viewCtx:     viewCtx,
		coordinator: views.NewCoordinator(viewCtx),
		sidebar:     components.NewSidebar(navigator, playlists, cfg.Profile.Name),
		toolbar:     components.NewToolbar(facets),
		help:        components.NewHelp(),
		prompt:      components.NewPrompt(),
		searchInput: searchInput,
		keymap:      keymap,
		focusedPane: components.PaneSidebar,
	}
	app.commandLine = components.NewCommandLine(app.completeCommand)
	app.help.SetKeymap(keymap.HelpItems())
	app.sidebar.Focus()
	app.sidebar.MoveCursorTo(navigator.Visible())

	return app, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.logger.Info("shell started", "route", a.nav.CurrentRoute())
	return a.syncView()
}

// Navigator returns the navigation state owner.
func (a *App) Navigator() *nav.Navigator {
	return a.nav
}

// Playlists returns the playlist set.
func (a *App) Playlists() *nav.PlaylistSet {
	return a.playlists
}

// FocusedPane returns the pane receiving keys.
func (a *App) FocusedPane() components.Pane {
	return a.focusedPane
}

// Status returns the status bar message and whether it is an error.
func (a *App) Status() (string, bool) {
	return a.statusMsg, a.statusErr
}

// Searching reports whether the search field has keyboard focus.
func (a *App) Searching() bool {
	return a.searching
}

// searchVisible reports whether the search screen is on top of the route.
func (a *App) searchVisible() bool {
	return a.nav.Visible().Kind() == nav.KindSearch
}

func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.statusMsg = err.Error()
	a.statusErr = true
	a.logger.Error("shell error", "error", err)
}
