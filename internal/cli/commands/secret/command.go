// Package secret groups the Secrets Manager subcommands.
package secret

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/commands/secret/cancelrotation"
	secretdelete "github.com/mpyw/smkit/internal/cli/commands/secret/delete"
	"github.com/mpyw/smkit/internal/cli/commands/secret/list"
	"github.com/mpyw/smkit/internal/cli/commands/secret/rotate"
	"github.com/mpyw/smkit/internal/cli/commands/secret/show"
	"github.com/mpyw/smkit/internal/cli/commands/secret/update"
	"github.com/mpyw/smkit/internal/cli/commands/secret/validatepolicy"
)

// Command returns the secret command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "secret",
		Aliases: []string{"sm"},
		Usage:   "Interact with AWS Secrets Manager",
		Commands: []*cli.Command{
			list.Command(),
			show.Command(),
			update.Command(),
			secretdelete.Command(),
			rotate.Command(),
			cancelrotation.Command(),
			validatepolicy.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
