package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"blueprint/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [project-path]",
	Short: "Write a default configuration for a project",
	Long: `Write a default .blueprint/config.json under the given project root
(current directory when omitted). Edit it to ignore directories or change
log output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("project path: %w", err)
	}

	cfgPath := filepath.Join(root, config.ConfigDir, "config.json")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config already exists at %s", cfgPath)
	}

	if err := config.DefaultConfig().Save(root); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
	return nil
}
