package main

import (
	"fmt"
	"path/filepath"

	"github.com/aki-app/aki/internal/config"
	"github.com/aki-app/aki/internal/logging"
	"github.com/aki-app/aki/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configFile string
	startDest  string
	openRoute  string
)

var rootCmd = &cobra.Command{
	Use:   "aki",
	Short: "Terminal anime browser",
	Long: `aki is a keyboard-driven anime browsing shell for the terminal.

A sidebar lists Home, Trending, Genres, Schedule, your Library and your
Playlists. Drill into anime details and the player, search with filters,
and copy or reopen any screen by its route.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.config/aki/config.yaml)")
	rootCmd.Flags().StringVarP(&startDest, "start", "s", "", "destination to select at launch, e.g. trending or library-Movies")
	rootCmd.Flags().StringVarP(&openRoute, "open", "o", "", "route to open at launch, e.g. home/anime-details")

	rootCmd.AddCommand(initCmd, versionCmd, routeCmd)
}

// resolveConfigPath returns the --config path or the default location.
func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.ConfigPath()
}

func loadConfig() (*config.Config, string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// runApp starts the main TUI application.
func runApp(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if startDest != "" {
		cfg.UI.StartDestination = startDest
	}

	logDir := ""
	if cfg.Log.Enabled {
		logDir = filepath.Dir(path)
	}
	logger, err := logging.NewLogger(logDir, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.WithSession(uuid.NewString())

	app, err := tui.NewApp(tui.Options{
		Config:     cfg,
		Logger:     logger,
		ConfigPath: path,
		Route:      openRoute,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("aki version %s\n", version)
	},
}
