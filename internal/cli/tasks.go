package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jyang234/todo/internal/tasks"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [details]",
		Short: "Add a new task",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			details := ""
			if len(args) > 1 {
				details = args[1]
			}
			return a.runAdd(cmd, args[0], details)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}
			return a.runDone(cmd, id)
		},
	}
}

func (a *app) runAdd(cmd *cobra.Command, name, details string) error {
	store := a.loadStore(cmd)
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	task := store.Add(name, details)
	a.saveStore(cmd, store)

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", task.ID, task.Name)
	return nil
}

func (a *app) runList(cmd *cobra.Command) error {
	store := a.loadStore(cmd)
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	total, done, pending := store.Stats()
	a.log.Debug("listing tasks", "total", total, "done", done, "pending", pending)

	writeTaskTable(cmd.OutOrStdout(), store.List())
	return nil
}

func (a *app) runDone(cmd *cobra.Command, id int) error {
	store := a.loadStore(cmd)
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	task, err := store.Complete(id)
	if errors.Is(err, tasks.ErrTaskNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	a.saveStore(cmd, store)
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done: %s\n", task.ID, task.Name)
	return nil
}

// loadStore always returns a usable store; a broken file is reported and replaced by an empty list
func (a *app) loadStore(cmd *cobra.Command) *tasks.Store {
	store, err := tasks.Load(a.file)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading tasks: %v\n", err)
		a.log.Warn("starting with an empty task list", "file", a.file, "error", err)
	}
	a.log.Debug("loaded tasks", "file", a.file, "count", store.Len(), "next_id", store.NextID())
	return store
}

// saveStore reports write failures without failing the command
func (a *app) saveStore(cmd *cobra.Command, store *tasks.Store) {
	if err := tasks.Save(a.file, store); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving tasks: %v\n", err)
		a.log.Warn("task changes were not saved", "file", a.file, "error", err)
		return
	}
	a.log.Debug("saved tasks", "file", a.file, "count", store.Len())
}
