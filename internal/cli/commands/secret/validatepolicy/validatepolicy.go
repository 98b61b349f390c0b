// Package validatepolicy provides the Secrets Manager validate-policy command.
package validatepolicy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/smkit/internal/cli/colors"
	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// ErrValidationFailed is returned when the service rejects the policy.
var ErrValidationFailed = errors.New("policy validation failed")

// Runner executes the validate-policy command.
type Runner struct {
	UseCase *secret.ValidatePolicyUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the validate-policy command.
type Options struct {
	Name   string
	Policy string
	Format output.Format
}

// Command returns the validate-policy command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "validate-policy",
		Usage:     "Validate a resource policy",
		ArgsUsage: "[name]",
		Description: `Validate a resource-based policy before attaching it to a secret.

The service checks the JSON syntax, the grammar and that the policy does
not grant broad access. Pass a secret name to validate the policy in the
context of that secret.

Exits with a non-zero status when validation fails.

EXAMPLES:
   smkit secret validate-policy --file policy.json               Validate a file
   smkit secret validate-policy --file policy.json my-secret     Validate for a secret
   cat policy.json | smkit secret validate-policy --file -       Read from stdin`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Policy document path, or - for stdin",
				Required: true,
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("usage: smkit secret validate-policy --file <path> [name]")
	}

	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	policy, err := readPolicy(cmd.String("file"), lo.CoalesceOrEmpty[io.Reader](cmd.Root().Reader, os.Stdin))
	if err != nil {
		return err
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.ValidatePolicyUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Name:   cmd.Args().First(),
		Policy: policy,
		Format: format,
	})
}

func readPolicy(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // user-supplied path is the point
	}

	if err != nil {
		return "", fmt.Errorf("failed to read policy: %w", err)
	}

	return string(data), nil
}

// Run executes the validate-policy command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.ValidatePolicyInput{
		Name:   opts.Name,
		Policy: opts.Policy,
	})
	if err != nil {
		return err
	}

	passed := lo.FromPtr(result.IsPolicyValidationPassed())

	if opts.Format == output.FormatJSON {
		if err := output.JSON(r.Stdout, result); err != nil {
			return err
		}
	} else if passed {
		output.Println(r.Stdout, colors.Passed("Policy validation passed"))
	} else {
		for _, e := range result.ValidationErrors() {
			output.Printf(r.Stdout, "%s %s: %s\n",
				colors.Error("✗"),
				lo.FromPtr(e.CheckName()),
				lo.FromPtr(e.ErrorMessage()),
			)
		}
	}

	if !passed {
		return ErrValidationFailed
	}

	return nil
}
