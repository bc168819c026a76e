package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/jyang234/todo/internal/config"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs after the root pre-run
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	file    string
	verbose bool
}

// NewRootCmd builds the todo command tree
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A simple personal task tracker",
		Long: `todo keeps a list of tasks in a local JSON file.

Add tasks, list them, and mark them done. The task file defaults to
todos.json in the current directory.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Task file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDoneCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// setup loads configuration and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := config.Load()

	level := cfg.LogLevel
	if a.verbose {
		level = "DEBUG"
	}
	a.log = newLogger(cmd.ErrOrStderr(), level)

	if cfgErr != nil {
		a.log.Warn("skipped invalid configuration", "error", cfgErr)
	}

	if cmd.Flags().Changed("file") {
		cfg.File = a.file
	}
	a.cfg = cfg
	a.file = cfg.File

	a.log.Debug("configuration loaded", "file", a.file, "log_level", level)
	return nil
}

func newLogger(w io.Writer, levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Execute runs the root command, cancelling it on interrupt
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, NewRootCmd(version), os.Args[1:], os.Stdout, os.Stderr)
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// positionalNegatives inserts "--" before the first bare negative number so
// that "done -1" passes -1 as an argument rather than a shorthand flag. No
// todo flag has a numeric shorthand, so such a token is never a flag.
func positionalNegatives(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !negativeNumber.MatchString(arg) {
			continue
		}
		if i > 0 && (args[i-1] == "-f" || args[i-1] == "--file") {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
			fmt.Fprintln(stderr, "Error:", err)
		}
	}()

	cmd.SetArgs(positionalNegatives(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stdout, "Operation cancelled.")
			return err
		}
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}
	return nil
}
