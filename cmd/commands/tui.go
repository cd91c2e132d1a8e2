package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/taskman/clients/tui"
	"github.com/dohr-michael/taskman/internal/tasks"
	"github.com/dohr-michael/taskman/internal/theme"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive task list",
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	rt, err := openRuntime(ctx, cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	initial, err := theme.Parse(rt.cfg.UI.Theme)
	if err != nil {
		return err
	}
	themeCtx := theme.NewContext(initial)

	manager := tui.NewManager(ctx, tui.ManagerDeps{
		Store:       rt.store,
		Persister:   rt.persister,
		IDs:         tasks.NewIDGenerator(),
		Theme:       themeCtx,
		Placeholder: rt.cfg.UI.Placeholder,
	})
	defer manager.Close()

	return tui.Run(ctx, tui.NewApp(themeCtx, manager))
}
