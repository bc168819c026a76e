package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jyang234/todo/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var global, force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes a commented configuration file to .todo/config.yaml in the
current directory, or to ~/.todo/config.yaml with --global.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfig(global, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&global, "global", false, "Initialize global configuration")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}

func initConfig(global, force bool) (string, error) {
	path := config.ProjectConfigPath()
	write := config.WriteProjectDefault
	if global {
		path = config.GlobalConfigPath()
		write = config.WriteDefault
	}

	if exists(path) && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := write(path); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
