// Package update provides the Secrets Manager update command.
package update

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the update command.
type Runner struct {
	UseCase *secret.UpdateUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the update command. Nil fields are left untouched.
type Options struct {
	Name        string
	Description *string
	KmsKeyID    *string
	Value       *string
	Format      output.Format
}

// Command returns the update command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update secret description, KMS key or value",
		ArgsUsage: "<name>",
		Description: `Update the metadata or value of an existing secret.

Setting --value creates a new version; the AWSCURRENT label moves to it
and the previous version becomes AWSPREVIOUS. Changing --kms-key-id
without --value re-encrypts on the next version only.

Before confirming, a diff of the description is shown.

EXAMPLES:
   smkit secret update --description "DB creds" my-secret     Update the description
   smkit secret update --kms-key-id alias/app my-secret       Change the KMS key
   smkit secret update --value "$(cat creds.json)" my-secret  Store a new value
   smkit secret update --yes --description "" my-secret       Clear without confirmation`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "description",
				Usage: "New description",
			},
			&cli.StringFlag{
				Name:  "kms-key-id",
				Usage: "KMS key ARN, ID or alias",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "New secret string",
			},
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Skip confirmation prompt",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: smkit secret update <name>")
	}

	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	opts := Options{
		Name:        cmd.Args().First(),
		Description: setString(cmd, "description"),
		KmsKeyID:    setString(cmd, "kms-key-id"),
		Value:       setString(cmd, "value"),
		Format:      format,
	}

	if opts.Description == nil && opts.KmsKeyID == nil && opts.Value == nil {
		return secret.ErrNothingToUpdate
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.UpdateUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	skipConfirm := cmd.Bool("yes")
	if !skipConfirm {
		r.Preview(ctx, opts)

		confirmed, err := cliinternal.NewPrompter(ctx, cmd, false).ConfirmAction("Update secret", opts.Name, false)
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	return r.Run(ctx, opts)
}

func setString(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}

	return lo.ToPtr(cmd.String(name))
}

// Preview prints what the update will change. Fetch failures only skip the diff.
func (r *Runner) Preview(ctx context.Context, opts Options) {
	if opts.Description != nil {
		current, err := r.UseCase.GetCurrentDescription(ctx, opts.Name)
		if err != nil {
			output.Warning(r.Stderr, "could not fetch current description: %v", err)
		} else if diff := output.Diff(opts.Name+" (AWS)", opts.Name+" (new)", current, *opts.Description); diff != "" {
			output.Println(r.Stderr, diff)
		}
	}

	if opts.KmsKeyID != nil {
		output.Warn(r.Stderr, "KMS key will change to %s", *opts.KmsKeyID)
	}

	if opts.Value != nil {
		output.Warn(r.Stderr, "A new version of %s will be created", opts.Name)
	}
}

// Run executes the update command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.UpdateInput{
		Name:        opts.Name,
		Description: opts.Description,
		KmsKeyID:    opts.KmsKeyID,
		Value:       opts.Value,
	})
	if err != nil {
		return err
	}

	if opts.Format == output.FormatJSON {
		return output.JSON(r.Stdout, result)
	}

	if version := result.VersionID(); version != nil {
		output.Success(r.Stdout, "Updated secret %s (version: %s)", opts.Name, *version)
	} else {
		output.Success(r.Stdout, "Updated secret %s", opts.Name)
	}

	return nil
}
