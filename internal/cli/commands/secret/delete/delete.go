// Package delete provides the Secrets Manager delete command.
package delete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// DefaultRecoveryWindow is the service default in days.
const DefaultRecoveryWindow = 30

// Runner executes the delete command.
type Runner struct {
	UseCase *secret.DeleteUseCase
	Stdout  io.Writer
	Stderr  io.Writer
	Now     func() time.Time
}

// Options holds the options for the delete command.
type Options struct {
	Names          []string
	Force          bool
	RecoveryWindow int
	Format         output.Format
}

// Command returns the delete command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete secrets",
		ArgsUsage: "<name>...",
		Description: `Schedule one or more secrets for deletion.

By default, secrets are deleted after a 30-day recovery window.
Use --force for immediate permanent deletion without a recovery window.
This action cannot be undone.

RECOVERY WINDOW:
   Minimum: 7 days
   Maximum: 30 days
   Default: 30 days

EXAMPLES:
   smkit secret delete my-secret                      Delete with 30-day recovery (with confirmation)
   smkit secret delete --recovery-window 7 a b c      Delete three secrets with 7-day recovery
   smkit secret delete --force my-secret              Permanently delete immediately
   smkit secret delete --yes my-secret                Delete without confirmation`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Force deletion without recovery window",
			},
			&cli.IntFlag{
				Name:  "recovery-window",
				Usage: "Number of days before permanent deletion (7-30)",
				Value: DefaultRecoveryWindow,
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
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret delete <name>...")
	}

	force := cmd.Bool("force")
	if force && cmd.IsSet("recovery-window") {
		return errors.New("--force and --recovery-window cannot be combined")
	}

	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()

	confirmed, err := cliinternal.NewPrompter(ctx, cmd, cmd.Bool("yes")).ConfirmDelete(names, force, cmd.Bool("yes"))
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.DeleteUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Names:          names,
		Force:          force,
		RecoveryWindow: cmd.Int("recovery-window"),
		Format:         format,
	})
}

// Run executes the delete command.
// Every name is attempted; the returned error summarizes the failures.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	results := r.UseCase.Execute(ctx, secret.DeleteInput{
		Names:          opts.Names,
		Force:          opts.Force,
		RecoveryWindow: int64(opts.RecoveryWindow),
	})

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	for _, res := range results {
		switch {
		case res.Err != nil:
			output.Failed(r.Stderr, res.Key, res.Err)
		case opts.Format == output.FormatJSON:
			// Printed together below.
		case opts.Force:
			output.Warn(r.Stdout, "Permanently deleted secret %s", res.Key)
		default:
			r.printScheduled(res.Key, res.Value, now())
		}
	}

	if opts.Format == output.FormatJSON {
		if err := output.JSON(r.Stdout, succeeded(results)); err != nil {
			return err
		}
	}

	if failed := parallel.Errors(results); len(failed) > 0 {
		return fmt.Errorf("failed to delete %d of %d secrets", len(failed), len(results))
	}

	return nil
}

func (r *Runner) printScheduled(name string, result *model.DeleteSecretResult, now time.Time) {
	date := result.DeletionDate()
	if date == nil {
		output.Warn(r.Stdout, "Scheduled deletion of secret %s", name)

		return
	}

	output.Warn(r.Stdout, "Scheduled deletion of secret %s on %s (in %d days)",
		name,
		timeutil.FormatDate(*date),
		timeutil.DaysUntil(now, *date),
	)
}

func succeeded(results []*parallel.Result[string, *model.DeleteSecretResult]) []*model.DeleteSecretResult {
	return lo.FilterMap(results, func(res *parallel.Result[string, *model.DeleteSecretResult], _ int) (*model.DeleteSecretResult, bool) {
		return res.Value, res.Err == nil
	})
}
