package main

import (
	"fmt"
	"strings"

	"github.com/aki-app/aki/internal/nav"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route <route>",
	Short: "Resolve a route and print the visible destination",
	Long: `Resolve a route such as "home/anime-details/anime-watch" the way the
shell would open it, and print the visible destination and breadcrumbs.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	playlists := nav.NewPlaylistSet()
	for _, p := range cfg.Playlists {
		if err := playlists.AddWithKey(p.Key(), p.Name); err != nil {
			return fmt.Errorf("failed to load playlist %q: %w", p.Name, err)
		}
	}

	route, err := nav.ParseRoute(args[0], playlists)
	if err != nil {
		return err
	}

	n := nav.New(nav.WithClearStackOnSelect(cfg.Navigation.ClearStackOnSelect))
	if err := n.ApplyRoute(route); err != nil {
		return err
	}

	visible := n.Visible()
	cmd.Printf("visible: %s (%s)\n", visible.Title(), visible.ID())
	cmd.Printf("route:   %s\n", n.CurrentRoute())
	cmd.Printf("trail:   %s\n", strings.Join(n.Breadcrumbs(), " > "))
	return nil
}
