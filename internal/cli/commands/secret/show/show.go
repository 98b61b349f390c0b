// Package show provides the Secrets Manager show command.
package show

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the show command.
type Runner struct {
	UseCase *secret.DescribeUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the show command.
type Options struct {
	Name    string
	Format  output.Format
	NoPager bool
}

// Command returns the show command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"describe"},
		Usage:     "Show secret metadata",
		ArgsUsage: "<name>",
		Description: `Display the metadata of a secret: rotation settings, dates,
tags and version stages. The secret value is never fetched.

EXAMPLES:
   smkit secret show my-secret             Show metadata
   smkit -o json secret show my-secret     Show metadata as JSON`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: smkit secret show <name>")
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
		UseCase: &secret.DescribeUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Name:    cmd.Args().First(),
		Format:  format,
		NoPager: cmd.Bool("no-pager"),
	})
}

// Run executes the show command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	entry, err := r.UseCase.Execute(ctx, opts.Name)
	if err != nil {
		return err
	}

	if opts.Format == output.FormatJSON {
		return output.JSON(r.Stdout, entry)
	}

	return pager.WithPagerWriter(r.Stdout, opts.NoPager, func(w io.Writer) error {
		Render(output.New(w), entry)

		return nil
	})
}

// Render prints entry as labeled fields, skipping absent ones.
func Render(w *output.Writer, entry *model.SecretListEntry) {
	w.OptionalField("Name", entry.Name())
	w.OptionalField("ARN", entry.ARN())
	w.OptionalField("Description", entry.Description())
	w.OptionalField("KmsKeyId", entry.KmsKeyID())
	w.OptionalField("OwningService", entry.OwningService())
	w.OptionalField("PrimaryRegion", entry.PrimaryRegion())

	if enabled := entry.IsRotationEnabled(); enabled != nil {
		w.Field("Rotation", lo.Ternary(*enabled, "enabled", "disabled"))
	}

	w.OptionalField("RotationLambdaARN", entry.RotationLambdaARN())

	if rules := entry.RotationRules(); rules != nil {
		w.Field("RotationRules", formatRules(rules))
	}

	w.TimeField("Created", entry.CreatedDate())
	w.TimeField("LastChanged", entry.LastChangedDate())
	w.TimeField("LastAccessed", entry.LastAccessedDate())
	w.TimeField("LastRotated", entry.LastRotatedDate())
	w.TimeField("NextRotation", entry.NextRotationDate())
	w.TimeField("Deleted", entry.DeletedDate())

	if tags := entry.Tags(); len(tags) > 0 {
		w.Field("Tags", "")

		for _, tag := range tags {
			w.Value(lo.FromPtr(tag.Key()) + "=" + lo.FromPtr(tag.Value()))
		}
	}

	if stages := entry.SecretVersionsToStages(); len(stages) > 0 {
		w.Field("Versions", "")

		for _, id := range slices.Sorted(maps.Keys(stages)) {
			w.Value(id + " [" + strings.Join(stages[id], ", ") + "]")
		}
	}
}

func formatRules(rules *model.RotationRulesType) string {
	var parts []string

	if days := rules.AutomaticallyAfterDays(); days != nil {
		parts = append(parts, "every "+strconv.FormatInt(*days, 10)+" days")
	}

	if expr := rules.ScheduleExpression(); expr != nil {
		parts = append(parts, *expr)
	}

	if d := rules.Duration(); d != nil {
		parts = append(parts, "window "+*d)
	}

	return strings.Join(parts, ", ")
}
