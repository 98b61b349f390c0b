// Package commands provides the command-line interface for smkit.
package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/commands/secret"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "smkit",
		Usage:   "Inspect and manage AWS Secrets Manager secrets",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  cliinternal.FlagRegion,
				Usage: "AWS region (defaults to the SDK configuration chain)",
			},
			&cli.StringFlag{
				Name:  cliinternal.FlagProfile,
				Usage: "Shared config profile",
			},
			&cli.StringFlag{
				Name:    cliinternal.FlagOutput,
				Aliases: []string{"o"},
				Usage:   "Output format: text or json",
				Value:   "text",
			},
		},
		Commands: []*cli.Command{
			secret.Command(),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			_, _ = fmt.Fprintf(cliinternal.ErrWriter(cmd), "\nCommand not found: %s\n", command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp()
