package tui

import (
	"errors"
	"fmt"

	"github.com/aki-app/aki/internal/config"
	"github.com/aki-app/aki/internal/nav"
	"github.com/aki-app/aki/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoPlaylist = errors.New("no playlist selected")

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSize(msg)

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKeyMsg(msg))

	case components.DestinationSelectedMsg:
		a.selectDestination(msg.Dest)

	case components.PushMsg:
		a.push(msg.Dest)

	case components.PopMsg:
		a.pop()

	case components.FocusSearchMsg:
		cmds = append(cmds, a.focusSearch())

	case components.SectionToggledMsg:
		a.toggleSection(msg.Section)

	case components.OpenProfileMsg:
		a.openProfile()

	case components.SetSearchQueryMsg:
		a.setSearchQuery(msg.Query)

	case components.NowPlayingMsg:
		a.setStatus("Now Playing: " + msg.Title)
		if a.config.UI.Notifications {
			cmds = append(cmds, notifyCmd(a.notifier, "Now Playing", msg.Title))
		}

	case components.StatusMsg:
		a.statusMsg = msg.Text
		a.statusErr = msg.Error

	case components.HelpClosedMsg:
		a.showHelp = false

	case components.PromptSubmittedMsg:
		a.handlePromptSubmitted(msg)

	case components.PromptCancelledMsg:
		a.setStatus("")

	case components.CommandSubmittedMsg:
		cmds = append(cmds, a.executeCommand(msg.Input))

	case routeCopiedMsg:
		if msg.err != nil {
			a.setError(msg.err)
		} else {
			a.setStatus("Copied route: " + msg.route)
		}

	case notifiedMsg:
		if msg.err != nil {
			// Notifications are best effort
			a.logger.Warn("notification failed", "error", msg.err)
		}

	default:
		// Cursor blink and other input internals
		cmds = append(cmds, a.forwardToInputs(msg))
	}

	cmds = append(cmds, a.syncView())
	return a, tea.Batch(cmds...)
}

// syncView makes the coordinator show the navigator's visible destination.
func (a *App) syncView() tea.Cmd {
	visible := a.nav.Visible()
	cmd, switched := a.coordinator.Sync(visible, a.nav.Depth())
	if switched {
		a.logger.Debug("view changed", "visible", visible.ID(), "route", a.nav.CurrentRoute())
		a.viewport.GotoTop()
		if !a.searchVisible() {
			a.toolbar.Close()
		}
	}
	a.sidebar.Refresh()
	return cmd
}

func (a *App) forwardToInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if a.searching {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.prompt.Active() {
		_, cmd := a.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.commandLine.Active() {
		_, cmd := a.commandLine.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height
	a.help.SetSize(msg.Width, msg.Height)
	a.prompt.SetSize(msg.Width, msg.Height)
	a.commandLine.SetSize(msg.Width, 1)
}

// handleKeyMsg routes a key to the first layer that wants it: modal inputs,
// then the search field, the facet toolbar, the visible view and finally
// the global keymap.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if a.prompt.Active() {
		_, cmd := a.prompt.Update(msg)
		return cmd
	}
	if a.commandLine.Active() {
		_, cmd := a.commandLine.Update(msg)
		return cmd
	}
	if a.showHelp {
		_, cmd := a.help.Update(msg)
		return cmd
	}
	if a.searching {
		return a.handleSearchInput(msg)
	}

	if a.focusedPane == components.PaneContent {
		if a.searchVisible() {
			if a.toolbar.HandleKey(msg) {
				a.keyState.Reset()
				return nil
			}
		}
		if cmd, consumed := a.coordinator.HandleKey(msg); consumed {
			a.keyState.Reset()
			return cmd
		}
	}

	action, ok := a.keyState.HandleKey(msg, a.keymap)
	if !ok || action == "" {
		return nil
	}
	return a.handleAction(action)
}

func (a *App) handleAction(action string) tea.Cmd {
	switch action {
	case "up":
		a.moveCursor(-1)
	case "down":
		a.moveCursor(1)
	case "top":
		if a.focusedPane == components.PaneSidebar {
			a.sidebar.MoveCursor(-len(a.sidebar.Rows()) - 1)
		} else {
			a.viewport.GotoTop()
		}
	case "bottom":
		if a.focusedPane == components.PaneSidebar {
			a.sidebar.MoveCursor(len(a.sidebar.Rows()) + 1)
		} else {
			a.viewport.GotoBottom()
		}
	case "half_up":
		a.viewport.HalfViewUp()
	case "half_down":
		a.viewport.HalfViewDown()
	case "select":
		if a.focusedPane == components.PaneSidebar {
			return a.sidebar.Activate()
		}
		return a.coordinator.HandleSelect()
	case "back":
		return a.back()
	case "switch_pane":
		a.switchPane()
	case "search":
		return a.focusSearch()
	case "toggle_library":
		a.toggleSection(nav.SectionLibrary)
	case "toggle_playlists":
		a.toggleSection(nav.SectionPlaylists)
	case "profile":
		a.openProfile()
	case "new_playlist":
		return a.prompt.Open(components.PromptNewPlaylist, "New Playlist", "", "")
	case "rename_playlist":
		p, err := a.targetPlaylist()
		if err != nil {
			a.setError(err)
			return nil
		}
		return a.prompt.Open(components.PromptRenamePlaylist, "Rename Playlist", p.Name, p.Key)
	case "delete":
		p, err := a.targetPlaylist()
		if err != nil {
			a.setError(err)
			return nil
		}
		a.deletePlaylist(p.Key)
	case "copy":
		return copyRouteCmd(a.clipboard, a.nav.CurrentRoute())
	case "command":
		return a.commandLine.Open()
	case "help":
		a.showHelp = true
	case "quit":
		return a.quit()
	}
	return nil
}

func (a *App) moveCursor(delta int) {
	if a.focusedPane == components.PaneSidebar {
		a.sidebar.MoveCursor(delta)
		return
	}
	if delta < 0 {
		a.viewport.LineUp(-delta)
	} else {
		a.viewport.LineDown(delta)
	}
}

func (a *App) switchPane() {
	if a.focusedPane == components.PaneSidebar {
		a.focusedPane = components.PaneContent
		a.sidebar.Blur()
		return
	}
	a.focusedPane = components.PaneSidebar
	a.toolbar.Close()
	a.sidebar.Focus()
}

// back lets the view handle escape first, then pops the stack. With nothing
// to pop, focus returns to the sidebar.
func (a *App) back() tea.Cmd {
	if cmd, handled := a.coordinator.HandleBack(); handled {
		return cmd
	}
	if a.toolbar.Open() {
		a.toolbar.Close()
		return nil
	}
	if a.pop() {
		return nil
	}
	if a.focusedPane == components.PaneContent {
		a.switchPane()
	}
	return nil
}

func (a *App) quit() tea.Cmd {
	a.logger.Info("shell quit", "route", a.nav.CurrentRoute())
	return tea.Quit
}

// --- Navigation ---

func (a *App) selectDestination(d nav.Destination) {
	a.nav.SelectSidebarItem(d)
	a.logger.Info("destination selected", "id", d.ID(), "route", a.nav.CurrentRoute())
}

func (a *App) push(d nav.Destination) {
	a.nav.Push(d)
	a.logger.Info("destination pushed", "id", d.ID(), "depth", a.nav.Depth())
}

func (a *App) pop() bool {
	d, ok := a.nav.Pop()
	if ok {
		a.logger.Info("destination popped", "id", d.ID(), "depth", a.nav.Depth())
	}
	return ok
}

func (a *App) openProfile() {
	a.nav.OpenProfile()
	a.sidebar.MoveCursorTo(nav.Settings)
	a.logger.Info("profile opened", "route", a.nav.CurrentRoute())
}

func (a *App) toggleSection(s nav.Section) {
	a.nav.ToggleSection(s)
	a.logger.Debug("section toggled", "section", s.String(), "expanded", a.nav.Expanded(s))
}

// focusSearch selects Search and gives the search field keyboard focus.
func (a *App) focusSearch() tea.Cmd {
	a.nav.FocusSearch()
	a.searching = true
	a.sidebar.Focus()
	a.focusedPane = components.PaneSidebar
	a.searchInput.SetValue(a.nav.SearchQuery())
	a.searchInput.CursorEnd()
	return a.searchInput.Focus()
}

func (a *App) blurSearch() {
	a.searching = false
	a.searchInput.Blur()
	a.sidebar.SetSearchView("")
}

func (a *App) setSearchQuery(q string) {
	a.nav.SetSearchQuery(q)
	a.searchInput.SetValue(q)
	a.searchInput.CursorEnd()
}

// handleSearchInput edits the query while the search field is focused.
// Enter submits and moves focus to the results; escape keeps the query and
// returns to the sidebar.
func (a *App) handleSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.blurSearch()
		return nil
	case "enter":
		a.blurSearch()
		a.focusedPane = components.PaneContent
		a.sidebar.Blur()
		a.logger.Debug("search submitted", "query", a.nav.SearchQuery())
		return nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.nav.SetSearchQuery(a.searchInput.Value())
	return cmd
}

// --- Playlists ---

// targetPlaylist returns the playlist under the sidebar cursor when the
// sidebar is focused, otherwise the visible playlist.
func (a *App) targetPlaylist() (nav.Playlist, error) {
	var d nav.Destination
	if a.focusedPane == components.PaneSidebar {
		row, ok := a.sidebar.CurrentRow()
		if !ok {
			return nav.Playlist{}, errNoPlaylist
		}
		d = row.Dest
	} else {
		d = a.nav.Visible()
	}

	p, ok := d.Playlist()
	if !ok {
		return nav.Playlist{}, errNoPlaylist
	}
	if current, found := a.playlists.Get(p.Key); found {
		return current, nil
	}
	return nav.Playlist{}, fmt.Errorf("%w: %s", nav.ErrPlaylistNotFound, p.Key)
}

func (a *App) handlePromptSubmitted(msg components.PromptSubmittedMsg) {
	switch msg.Purpose {
	case components.PromptNewPlaylist:
		a.createPlaylist(msg.Value)
	case components.PromptRenamePlaylist:
		a.renamePlaylist(msg.Target, msg.Value)
	}
}

func (a *App) createPlaylist(name string) nav.Playlist {
	p := a.playlists.Add(name)
	a.logger.Info("playlist created", "key", p.Key, "name", p.Name)
	a.sidebar.Refresh()
	a.sidebar.MoveCursorTo(nav.PlaylistDestination(p))
	a.setStatus("Created playlist: " + p.Name)
	a.persistPlaylists()
	return p
}

func (a *App) renamePlaylist(key, name string) {
	p, err := a.playlists.Rename(key, name)
	if err != nil {
		a.setError(fmt.Errorf("failed to rename playlist: %w", err))
		return
	}
	updated := a.nav.RenamePlaylist(key, p.Name)
	a.logger.Info("playlist renamed", "key", key, "name", p.Name, "frames", updated)
	a.setStatus("Renamed playlist: " + p.Name)
	a.persistPlaylists()
}

func (a *App) deletePlaylist(key string) {
	p, ok := a.playlists.Get(key)
	if !ok {
		a.setError(fmt.Errorf("failed to delete playlist: %w", nav.ErrPlaylistNotFound))
		return
	}
	if err := a.playlists.Remove(key); err != nil {
		a.setError(fmt.Errorf("failed to delete playlist: %w", err))
		return
	}
	a.nav.Forget(nav.PlaylistDestination(p))
	a.logger.Info("playlist deleted", "key", key, "name", p.Name)
	a.setStatus("Deleted playlist: " + p.Name)
	a.persistPlaylists()
}

// persistPlaylists writes the playlist set back to the config file.
func (a *App) persistPlaylists() {
	if a.configPath == "" {
		return
	}
	all := a.playlists.All()
	a.config.Playlists = make([]config.PlaylistConfig, 0, len(all))
	for _, p := range all {
		pc := config.PlaylistConfig{Name: p.Name}
		if p.Key != p.Name {
			pc.ID = p.Key
		}
		a.config.Playlists = append(a.config.Playlists, pc)
	}
	if err := config.SaveTo(a.config, a.configPath); err != nil {
		a.setError(err)
	}
}
