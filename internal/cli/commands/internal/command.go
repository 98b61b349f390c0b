// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/infra"
	awssecret "github.com/mpyw/smkit/internal/provider/aws/secret"
)

// Global flag names, defined on the root command and visible to every subcommand.
const (
	FlagRegion  = "region"
	FlagProfile = "profile"
	FlagOutput  = "output"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	output.Printf(ErrWriter(cmd), "\nUnknown command: %s\n", command)
}

// ErrWriter returns the root error writer, falling back to the root writer.
func ErrWriter(cmd *cli.Command) io.Writer {
	return lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
}

// AWSOptions reads the global AWS flags.
func AWSOptions(cmd *cli.Command) infra.Options {
	return infra.Options{
		Region:  cmd.String(FlagRegion),
		Profile: cmd.String(FlagProfile),
	}
}

// OutputFormat reads and validates the global --output flag.
func OutputFormat(cmd *cli.Command) (output.Format, error) {
	return output.ParseFormat(cmd.String(FlagOutput))
}

// NewAdapter creates the Secrets Manager adapter for the selected account.
func NewAdapter(ctx context.Context, cmd *cli.Command) (*awssecret.Adapter, error) {
	return awssecret.NewAdapter(ctx, AWSOptions(cmd))
}

// NewPrompter creates a confirmation prompter.
// The caller identity is resolved only when a prompt will actually be shown;
// failing to resolve it just hides the target line.
func NewPrompter(ctx context.Context, cmd *cli.Command, skipConfirm bool) *confirm.Prompter {
	p := &confirm.Prompter{
		Stdin:  lo.CoalesceOrEmpty[io.Reader](cmd.Root().Reader, os.Stdin),
		Stdout: cmd.Root().Writer,
		Stderr: ErrWriter(cmd),
	}

	if skipConfirm {
		return p
	}

	if identity, err := infra.GetAWSIdentity(ctx, AWSOptions(cmd)); err == nil {
		p.AccountID = identity.AccountID
		p.Region = identity.Region
		p.Profile = identity.Profile
	}

	return p
}
