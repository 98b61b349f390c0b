// Package cancelrotation provides the Secrets Manager cancel-rotation command.
package cancelrotation

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the cancel-rotation command.
type Runner struct {
	UseCase *secret.CancelRotationUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the cancel-rotation command.
type Options struct {
	Names  []string
	Format output.Format
}

// Command returns the cancel-rotation command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "cancel-rotation",
		Usage:     "Turn off automatic rotation",
		ArgsUsage: "<name>...",
		Description: `Cancel a rotation in progress and turn off automatic rotation.

If a rotation was in progress, the version it created keeps the
AWSPENDING label; remove it before starting another rotation.

EXAMPLES:
   smkit secret cancel-rotation my-secret       Cancel rotation of one secret
   smkit secret cancel-rotation a b c           Cancel rotation of three secrets`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret cancel-rotation <name>...")
	}

	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.CancelRotationUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Names:  cmd.Args().Slice(),
		Format: format,
	})
}

// Run executes the cancel-rotation command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	results := r.UseCase.Execute(ctx, opts.Names)

	done := make([]*model.CancelRotateSecretResult, 0, len(results))

	for _, res := range results {
		if res.Err != nil {
			output.Failed(r.Stderr, res.Key, res.Err)

			continue
		}

		done = append(done, res.Value)

		if opts.Format != output.FormatJSON {
			output.Success(r.Stdout, "Cancelled rotation of %s", res.Key)

			if version := res.Value.VersionID(); version != nil {
				output.Hint(r.Stderr, "version %s of %s may still carry AWSPENDING", *version, res.Key)
			}
		}
	}

	if opts.Format == output.FormatJSON {
		if err := output.JSON(r.Stdout, done); err != nil {
			return err
		}
	}

	if failed := parallel.Errors(results); len(failed) > 0 {
		return fmt.Errorf("failed to cancel rotation of %d of %d secrets", len(failed), len(results))
	}

	return nil
}
