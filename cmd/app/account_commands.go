package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/azurecli/cmd/app/commands"
	"github.com/allisson/azurecli/internal/app"
)

func getAccountCommands() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage publish settings, management certificates and the current subscription",
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a publish settings file or a management certificate",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "Publish settings or certificate file (alternative to the positional argument)",
					},
					&cli.BoolFlag{
						Name:  "skipregister",
						Value: false,
						Usage: "Skip registering resource providers for the imported subscription",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						credentialUseCase, err := container.CredentialUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountImport(
							ctx,
							credentialUseCase,
							container.ProviderRegistrar(),
							container.Logger(),
							commands.DefaultIO().Writer,
							firstArgOrFlag(cmd, "file"),
							cmd.Bool("skipregister"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "export",
				Usage: "Export the management certificate of a subscription as PEM",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "subscription",
						Aliases: []string{"s"},
						Usage:   "Subscription name or id (defaults to the current subscription)",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Output file (defaults to <subscription name>.pem)",
					},
					&cli.StringFlag{
						Name:  "publishsettings",
						Usage: "Publish settings file to read instead of the imported one",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						credentialUseCase, err := container.CredentialUseCase()
						if err != nil {
							return err
						}
						subscriptionUseCase, err := container.SubscriptionUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountExport(
							ctx,
							credentialUseCase,
							subscriptionUseCase,
							container.Logger(),
							commands.DefaultIO(),
							cmd.String("subscription"),
							cmd.String("file"),
							cmd.String("publishsettings"),
						)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List the imported subscriptions",
				Flags: []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						subscriptionUseCase, err := container.SubscriptionUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountList(
							ctx,
							subscriptionUseCase,
							container.Logger(),
							commands.DefaultIO().Writer,
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:      "set",
				Usage:     "Set the current subscription",
				ArgsUsage: "<name|id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "subscription",
						Aliases: []string{"s"},
						Usage:   "Subscription name or id (alternative to the positional argument)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						subscriptionUseCase, err := container.SubscriptionUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountSet(
							ctx,
							subscriptionUseCase,
							container.Logger(),
							commands.DefaultIO().Writer,
							firstArgOrFlag(cmd, "subscription"),
						)
					})
				},
			},
			{
				Name:  "show",
				Usage: "Show the current subscription",
				Flags: []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						subscriptionUseCase, err := container.SubscriptionUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountShow(
							ctx,
							subscriptionUseCase,
							container.Logger(),
							commands.DefaultIO().Writer,
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "clear",
				Usage: "Remove the imported publish settings, certificate and current subscription",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(func(container *app.Container) error {
						credentialUseCase, err := container.CredentialUseCase()
						if err != nil {
							return err
						}

						return commands.RunAccountClear(
							ctx,
							credentialUseCase,
							container.Logger(),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
		},
	}
}
