package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/jyang234/todo/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage todo configuration",
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show merged configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, a.cfg)
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open configuration in editor",
		RunE:  runConfigEdit,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Run:   runConfigPath,
	}

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)

	configEditCmd.Flags().Bool("global", false, "Edit global config")

	return configCmd
}

func runConfigShow(cmd *cobra.Command, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# Merged configuration (global + project + environment + flags)")
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")

	var path string
	if global {
		path = config.GlobalConfigPath()
	} else {
		path = config.ProjectConfigPath()
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	c := exec.CommandContext(cmd.Context(), editor, path)
	c.Stdin = os.Stdin
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()

	return c.Run()
}

func runConfigPath(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Global:  %s\n", config.GlobalConfigPath())
	fmt.Fprintf(out, "Project: %s\n", config.ProjectConfigPath())
}
