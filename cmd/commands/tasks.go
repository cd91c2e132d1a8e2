package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/taskman/internal/tasks"
)

// NewTasksCommand returns the tasks subcommand.
func NewTasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Manage tasks without the TUI",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all tasks",
				Action: runTasksList,
			},
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "<title...>",
				Action:    runTasksAdd,
			},
			{
				Name:      "toggle",
				Usage:     "Flip a task between active and done",
				ArgsUsage: "<task_id>",
				Action:    runTasksToggle,
			},
			{
				Name:      "rm",
				Usage:     "Delete a task",
				ArgsUsage: "<task_id>",
				Action:    runTasksDelete,
			},
		},
		DefaultCommand: "list",
	}
}

func runTasksList(ctx context.Context, cmd *cli.Command) error {
	rt, err := openRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.Root().Writer
	list := rt.store.Tasks()
	if len(list) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, t := range list {
		status := "active"
		if t.Completed {
			status = "done"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, status, t.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nActive Tasks: %d\n", tasks.ActiveCount(list))
	return nil
}

func runTasksAdd(ctx context.Context, cmd *cli.Command) error {
	title := strings.Join(cmd.Args().Slice(), " ")
	if !tasks.ValidTitle(title) {
		return errors.New("usage: taskman tasks add <title...> (title must not be blank)")
	}

	rt, err := openRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ids := tasks.NewIDGenerator()
	ids.Observe(rt.store.Tasks())
	task := tasks.Task{ID: ids.Next(), Title: title}

	var saveErr error
	unsubscribe := rt.mirror(ctx, &saveErr)
	defer unsubscribe()

	rt.store.Dispatch(tasks.Add(task))
	if saveErr != nil {
		return saveErr
	}

	fmt.Fprintf(cmd.Root().Writer, "Task %d added.\n", task.ID)
	return nil
}

func runTasksToggle(ctx context.Context, cmd *cli.Command) error {
	return runByID(ctx, cmd, "toggle", func(id int64, list []tasks.Task) (tasks.Action, string) {
		t, _ := tasks.Find(list, id)
		state := "done"
		if t.Completed {
			state = "active"
		}
		return tasks.Toggle(id), fmt.Sprintf("Task %d marked %s.", id, state)
	})
}

func runTasksDelete(ctx context.Context, cmd *cli.Command) error {
	return runByID(ctx, cmd, "rm", func(id int64, _ []tasks.Task) (tasks.Action, string) {
		return tasks.Delete(id), fmt.Sprintf("Task %d deleted.", id)
	})
}

// runByID parses the id argument, dispatches the action built for it when the
// task exists and prints the outcome.
func runByID(ctx context.Context, cmd *cli.Command, name string, build func(id int64, list []tasks.Task) (tasks.Action, string)) error {
	arg := cmd.Args().First()
	if arg == "" {
		return fmt.Errorf("usage: taskman tasks %s <task_id>", name)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q: %w", arg, err)
	}

	rt, err := openRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.Root().Writer
	list := rt.store.Tasks()
	if _, ok := tasks.Find(list, id); !ok {
		fmt.Fprintf(out, "Task %d not found.\n", id)
		return nil
	}

	var saveErr error
	unsubscribe := rt.mirror(ctx, &saveErr)
	defer unsubscribe()

	action, msg := build(id, list)
	rt.store.Dispatch(action)
	if saveErr != nil {
		return saveErr
	}

	fmt.Fprintln(out, msg)
	return nil
}
