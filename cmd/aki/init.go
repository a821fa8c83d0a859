package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aki-app/aki/internal/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default settings",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing config file without asking")
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		cmd.Printf("Config file already exists: %s\n", path)
		cmd.Print("Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := config.SaveTo(config.DefaultConfig(), path); err != nil {
		return err
	}

	cmd.Printf("Config file created: %s\n", path)
	return nil
}
