package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aki-app/aki/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(a *App, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	// Args completes the command's first argument.
	Args    func(a *App) []string
	Handler CommandHandlerFunc
}

// CommandRegistry holds all available commands by name and alias.
var CommandRegistry = map[string]CommandDef{}

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{
			Name:        "goto",
			Aliases:     []string{"g", "select"},
			Description: "Select a sidebar destination by id (home, trending, library-Movies, ...)",
			Args:        destinationIDs,
			Handler:     handleGoto,
		},
		{
			Name:        "open",
			Aliases:     []string{"o", "route"},
			Description: "Open a route, e.g. home/anime-details/anime-watch",
			Args:        destinationIDs,
			Handler:     handleOpen,
		},
		{
			Name:        "push",
			Description: "Push a destination onto the stack",
			Args:        destinationIDs,
			Handler:     handlePush,
		},
		{
			Name:        "back",
			Aliases:     []string{"b", "pop"},
			Description: "Go back one screen",
			Handler:     handleBack,
		},
		{
			Name:        "top",
			Aliases:     []string{"root"},
			Description: "Pop to the root screen",
			Handler:     handleTop,
		},
		{
			Name:        "search",
			Aliases:     []string{"s", "find"},
			Description: "Search for a title",
			Handler:     handleSearch,
		},
		{
			Name:        "playlist",
			Aliases:     []string{"pl"},
			Description: "Manage playlists (new <name>, rename <name>, delete)",
			Args: func(*App) []string {
				return []string{"new", "rename", "delete"}
			},
			Handler: handlePlaylist,
		},
		{
			Name:        "toggle",
			Aliases:     []string{"t"},
			Description: "Expand or collapse a sidebar section (library, playlists)",
			Args: func(*App) []string {
				return []string{"library", "playlists"}
			},
			Handler: handleToggle,
		},
		{
			Name:        "profile",
			Description: "View profile",
			Handler:     handleProfile,
		},
		{
			Name:        "yank",
			Aliases:     []string{"y", "copy"},
			Description: "Copy the current route",
			Handler:     handleYank,
		},
		{
			Name:        "where",
			Aliases:     []string{"pwd"},
			Description: "Show the current route",
			Handler:     handleWhere,
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit application",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Description: "Show help",
			Handler:     handleHelpCommand,
		},
		{
			Name:        "commands",
			Aliases:     []string{"list", "ls"},
			Description: "List all available commands",
			Handler:     handleCommandsCommand,
		},
	}

	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

// Core Handlers

func handleGoto(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		a.setStatus("Usage: :goto <destination>")
		return nil
	}
	d, err := nav.ParseDestination(strings.Join(args, " "), a.playlists)
	if err != nil {
		a.setError(err)
		return nil
	}
	if d.Kind() == nav.KindSearch {
		return a.focusSearch()
	}
	a.selectDestination(d)
	a.sidebar.MoveCursorTo(d)
	return nil
}

func handleOpen(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		a.setStatus("Usage: :open <route>")
		return nil
	}
	route, err := nav.ParseRoute(strings.Join(args, " "), a.playlists)
	if err != nil {
		a.setError(err)
		return nil
	}
	if err := a.nav.ApplyRoute(route); err != nil {
		a.setError(err)
		return nil
	}
	a.logger.Info("route opened", "route", a.nav.CurrentRoute())
	a.sidebar.MoveCursorTo(route[0])
	return nil
}

func handlePush(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		a.setStatus("Usage: :push <destination>")
		return nil
	}
	d, err := nav.ParseDestination(strings.Join(args, " "), a.playlists)
	if err != nil {
		a.setError(err)
		return nil
	}
	a.push(d)
	return nil
}

func handleBack(a *App, _ []string) tea.Cmd {
	if !a.pop() {
		a.setStatus("Already at the root")
	}
	return nil
}

func handleTop(a *App, _ []string) tea.Cmd {
	a.nav.PopTo(0)
	return nil
}

func handleSearch(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		return a.focusSearch()
	}
	a.nav.FocusSearch()
	a.setSearchQuery(strings.Join(args, " "))
	return nil
}

func handlePlaylist(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		a.setStatus("Usage: :playlist <new|rename|delete> [name]")
		return nil
	}

	name := strings.TrimSpace(strings.Join(args[1:], " "))
	switch strings.ToLower(args[0]) {
	case "new", "add":
		if name == "" {
			return a.handleAction("new_playlist")
		}
		a.createPlaylist(name)
	case "rename", "mv":
		if name == "" {
			return a.handleAction("rename_playlist")
		}
		p, err := a.targetPlaylist()
		if err != nil {
			a.setError(err)
			return nil
		}
		a.renamePlaylist(p.Key, name)
	case "delete", "rm":
		return a.handleAction("delete")
	default:
		a.setStatus(fmt.Sprintf("Unknown playlist action: %s", args[0]))
	}
	return nil
}

func handleToggle(a *App, args []string) tea.Cmd {
	if len(args) == 0 {
		a.setStatus("Usage: :toggle <library|playlists>")
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "library", "lib", "l":
		a.toggleSection(nav.SectionLibrary)
	case "playlists", "playlist", "p":
		a.toggleSection(nav.SectionPlaylists)
	default:
		a.setStatus(fmt.Sprintf("Unknown section: %s", args[0]))
	}
	return nil
}

func handleProfile(a *App, _ []string) tea.Cmd {
	a.openProfile()
	return nil
}

func handleYank(a *App, _ []string) tea.Cmd {
	return copyRouteCmd(a.clipboard, a.nav.CurrentRoute())
}

func handleWhere(a *App, _ []string) tea.Cmd {
	a.setStatus(a.nav.CurrentRoute())
	return nil
}

func handleQuitCommand(a *App, _ []string) tea.Cmd {
	return a.quit()
}

func handleHelpCommand(a *App, _ []string) tea.Cmd {
	a.showHelp = true
	return nil
}

func handleCommandsCommand(a *App, _ []string) tea.Cmd {
	a.setStatus("Commands: " + strings.Join(commandNames(), ", "))
	return nil
}

// Helpers

func (a *App) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	if cmdDef, ok := CommandRegistry[cmdName]; ok {
		a.logger.Debug("command executed", "command", cmdDef.Name, "args", args)
		return cmdDef.Handler(a, args)
	}

	a.setStatus(fmt.Sprintf("Unknown command: %s", cmdName))
	return nil
}

// completeCommand completes command names, then the first argument of
// commands that define Args.
func (a *App) completeCommand(input string) []string {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	// Typing the command name
	if len(parts) == 1 && !strings.HasSuffix(input, " ") {
		var matches []string
		for _, name := range commandNames() {
			if strings.HasPrefix(name, parts[0]) {
				matches = append(matches, name)
			}
		}
		return matches
	}

	cmdDef, ok := CommandRegistry[strings.ToLower(parts[0])]
	if !ok || cmdDef.Args == nil {
		return nil
	}

	prefix := ""
	if len(parts) > 1 {
		prefix = strings.Join(parts[1:], " ")
	}
	var matches []string
	for _, arg := range cmdDef.Args(a) {
		if strings.HasPrefix(strings.ToLower(arg), strings.ToLower(prefix)) {
			matches = append(matches, parts[0]+" "+arg)
		}
	}
	return matches
}

// commandNames returns the primary command names, sorted.
func commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range CommandRegistry {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	sort.Strings(names)
	return names
}

// destinationIDs lists every destination identity the parser accepts.
func destinationIDs(a *App) []string {
	ids := make([]string, 0, 12+a.playlists.Len())
	for _, d := range nav.MainDestinations {
		ids = append(ids, d.ID())
	}
	ids = append(ids, nav.Search.ID(), nav.Settings.ID(), nav.AnimeDetails.ID(), nav.AnimeWatch.ID())
	for _, k := range nav.LibraryKinds {
		ids = append(ids, nav.LibrarySection(k).ID())
	}
	for _, p := range a.playlists.All() {
		ids = append(ids, nav.PlaylistDestination(p).ID())
	}
	return ids
}
