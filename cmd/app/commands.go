package main

import (
	"github.com/urfave/cli/v3"

	"github.com/allisson/azurecli/cmd/app/commands"
	"github.com/allisson/azurecli/internal/app"
	"github.com/allisson/azurecli/internal/config"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getAccountCommands())
	return cmds
}

// withContainer builds the container from the environment, runs fn and
// shuts the container down, flushing metrics when enabled.
func withContainer(fn func(container *app.Container) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer commands.CloseContainer(container)

	return fn(container)
}

// formatFlag is the --format flag shared by commands with structured output.
func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// firstArgOrFlag returns the first positional argument, falling back to the named flag.
func firstArgOrFlag(cmd *cli.Command, flag string) string {
	if arg := cmd.Args().First(); arg != "" {
		return arg
	}
	return cmd.String(flag)
}
