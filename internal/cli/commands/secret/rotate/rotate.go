// Package rotate provides the Secrets Manager rotate command.
package rotate

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

// Runner executes the rotate command.
type Runner struct {
	UseCase *secret.RotateUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the rotate command.
type Options struct {
	Name               string
	Days               int64
	ScheduleExpression string
	Duration           string
	LambdaARN          string
	Immediately        *bool
	Format             output.Format
}

// Command returns the rotate command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "rotate",
		Usage:     "Configure and start rotation",
		ArgsUsage: "<name>",
		Description: `Configure automatic rotation for a secret and start a rotation.

Without schedule flags, the existing schedule is kept and a rotation
starts immediately. Use --immediately=false to only save the schedule;
rotation then starts at the next scheduled window.

SCHEDULE:
   --days N          Rotate every N days (1-1000)
   --schedule EXPR   cron() or rate() expression, e.g. "rate(10 days)"
   --duration D      Length of the rotation window, e.g. "3h"

EXAMPLES:
   smkit secret rotate my-secret                                   Rotate now
   smkit secret rotate --days 30 my-secret                         Every 30 days
   smkit secret rotate --schedule 'cron(0 16 1,15 * ? *)' --duration 2h my-secret
   smkit secret rotate --lambda-arn arn:aws:lambda:... --immediately=false my-secret`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "days",
				Usage: "Rotate every N days",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "cron() or rate() schedule expression",
			},
			&cli.StringFlag{
				Name:  "duration",
				Usage: "Rotation window length, e.g. 3h",
			},
			&cli.StringFlag{
				Name:  "lambda-arn",
				Usage: "ARN of the rotation function",
			},
			&cli.BoolFlag{
				Name:  "immediately",
				Usage: "Start a rotation now (service default: true)",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: smkit secret rotate <name>")
	}

	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	opts := Options{
		Name:               cmd.Args().First(),
		Days:               cmd.Int64("days"),
		ScheduleExpression: cmd.String("schedule"),
		Duration:           cmd.String("duration"),
		LambdaARN:          cmd.String("lambda-arn"),
		Format:             format,
	}

	if cmd.IsSet("immediately") {
		opts.Immediately = lo.ToPtr(cmd.Bool("immediately"))
	}

	r := &Runner{
		UseCase: &secret.RotateUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, opts)
}

// Run executes the rotate command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	input := secret.RotateInput{
		Name:               opts.Name,
		Days:               opts.Days,
		ScheduleExpression: opts.ScheduleExpression,
		Duration:           opts.Duration,
		RotationLambdaARN:  opts.LambdaARN,
		Immediately:        opts.Immediately,
	}

	result, err := r.UseCase.Execute(ctx, input)
	if err != nil {
		return err
	}

	if opts.Format == output.FormatJSON {
		return output.JSON(r.Stdout, result)
	}

	if rules := input.Rules(); rules != nil {
		output.Success(r.Stdout, "Rotation schedule of %s set to %s", opts.Name, rules)
	}

	if version := result.VersionID(); version != nil {
		output.Success(r.Stdout, "Started rotation of %s (version %s)", opts.Name, *version)
	} else {
		output.Success(r.Stdout, "Rotation of %s configured", opts.Name)
	}

	return nil
}
