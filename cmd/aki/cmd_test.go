package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aki-app/aki/internal/config"
	"github.com/aki-app/aki/internal/nav"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configFile = ""
		forceInit = false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("output = %q", out)
	}
}

func TestRouteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "", "route", "--config", path, "playlist-My%20Top%2025%20Rated/anime-details/anime-watch")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"visible: Watch (anime-watch)",
		"route:   playlist-My%20Top%2025%20Rated/anime-details/anime-watch",
		"trail:   My Top 25 Rated > Anime Details > Watch",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRouteCommandUnknownDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "", "route", "--config", path, "home/nowhere")
	if !errors.Is(err, nav.ErrUnknownDestination) {
		t.Errorf("expected ErrUnknownDestination, got %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aki", "config.yaml")

	out, err := execute(t, "", "init", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Config file created") {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile.Name != config.DefaultConfig().Profile.Name {
		t.Errorf("unexpected profile %q", cfg.Profile.Name)
	}
}

func TestInitCommandKeepsExistingWithoutConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("profile:\n  name: Keep Me\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "n\n", "init", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile.Name != "Keep Me" {
		t.Errorf("config was overwritten: %q", cfg.Profile.Name)
	}

	if _, err := execute(t, "", "init", "--config", path, "--force"); err != nil {
		t.Fatal(err)
	}
	cfg, _ = config.LoadFrom(path)
	if cfg.Profile.Name == "Keep Me" {
		t.Error("--force should overwrite")
	}
}
