package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/taskman/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskman",
		Usage: "A small terminal task list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewTUICommand(),
			NewTasksCommand(),
		},
		DefaultCommand: "tui",
	}
}
