// Package list provides the Secrets Manager list command.
package list

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/smkit/internal/cli/colors"
	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/cli/terminal"
	"github.com/mpyw/smkit/internal/model"
	"github.com/mpyw/smkit/internal/provider"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the list command.
type Runner struct {
	UseCase *secret.ListUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the list command.
type Options struct {
	Filters                []*model.Filter
	Pattern                string
	MaxResults             int32
	NextToken              string
	All                    bool
	IncludePlannedDeletion bool
	SortOrder              provider.SortOrder
	Format                 output.Format

	// Table renders names with descriptions fitted to Width.
	// Otherwise only names are printed, one per line.
	Table   bool
	Width   int
	NoPager bool
}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List secrets",
		ArgsUsage: "[name-prefix]",
		Description: `List secrets in AWS Secrets Manager.

Without arguments, lists the first page of secrets in the account.
A positional argument is shorthand for --filter name=<prefix>.

FILTERS:
   Keys: description, name, tag-key, tag-value, all
   Repeat --filter to add values; values for the same key are OR'ed,
   different keys are AND'ed. Prefix a value with ! to negate it.

EXAMPLES:
   smkit secret list                                List the first page
   smkit secret list --all                          List every secret
   smkit secret list prod/                          Names starting with "prod/"
   smkit secret list --filter tag-key=team          Secrets tagged with "team"
   smkit secret list --pattern '^app-[0-9]+$' --all Client-side regex on names
   smkit -o json secret list --max-results 5        First 5 as JSON`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Service-side filter as key=value (repeatable)",
			},
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "Regular expression the secret name must match",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Usage: "Page size (1-100)",
			},
			&cli.StringFlag{
				Name:  "next-token",
				Usage: "Continue from a previous page",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Follow pagination to the last page",
			},
			&cli.BoolFlag{
				Name:  "include-planned-deletion",
				Usage: "Include secrets scheduled for deletion",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort by creation date: asc or desc",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	format, err := cliinternal.OutputFormat(cmd)
	if err != nil {
		return err
	}

	filters, err := ParseFilters(cmd.StringSlice("filter"))
	if err != nil {
		return err
	}

	if prefix := cmd.Args().First(); prefix != "" {
		filters = mergeFilter(filters, model.FilterKeyName, prefix)
	}

	sortOrder, err := parseSortOrder(cmd.String("sort"))
	if err != nil {
		return err
	}

	adapter, err := cliinternal.NewAdapter(ctx, cmd)
	if err != nil {
		return err
	}

	width, tty := terminal.Width(cmd.Root().Writer)

	r := &Runner{
		UseCase: &secret.ListUseCase{Client: adapter},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Filters:                filters,
		Pattern:                cmd.String("pattern"),
		MaxResults:             int32(cmd.Int("max-results")), //nolint:gosec // service caps at 100
		NextToken:              cmd.String("next-token"),
		All:                    cmd.Bool("all"),
		IncludePlannedDeletion: cmd.Bool("include-planned-deletion"),
		SortOrder:              sortOrder,
		Format:                 format,
		Table:                  tty,
		Width:                  width,
		NoPager:                cmd.Bool("no-pager"),
	})
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.ListInput{
		Filters:                opts.Filters,
		NamePattern:            opts.Pattern,
		MaxResults:             opts.MaxResults,
		NextToken:              opts.NextToken,
		All:                    opts.All,
		IncludePlannedDeletion: opts.IncludePlannedDeletion,
		SortOrder:              opts.SortOrder,
	})
	if err != nil {
		return err
	}

	if opts.Format == output.FormatJSON {
		return output.JSON(r.Stdout, result)
	}

	err = pager.WithPagerWriter(r.Stdout, opts.NoPager || !opts.Table, func(w io.Writer) error {
		if opts.Table {
			printTable(w, result.SecretList(), opts.Width)

			return nil
		}

		for _, e := range result.SecretList() {
			output.Println(w, lo.FromPtr(e.Name()))
		}

		return nil
	})
	if err != nil {
		return err
	}

	if next := result.NextToken(); next != nil {
		output.Hint(r.Stderr, "more secrets available, continue with --next-token %s or use --all", *next)
	}

	return nil
}

func printTable(w io.Writer, entries []*model.SecretListEntry, width int) {
	nameWidth := lo.Max(lo.Map(entries, func(e *model.SecretListEntry, _ int) int {
		return len(lo.FromPtr(e.Name()))
	}))

	for _, e := range entries {
		name := lo.FromPtr(e.Name())
		line := colors.SecretName(name) + strings.Repeat(" ", nameWidth-len(name))

		note := lo.FromPtr(e.Description())
		if deleted := e.DeletedDate(); deleted != nil {
			note = "[deleted " + timeutil.FormatDate(*deleted) + "] " + note
		}

		if note = strings.TrimSpace(note); note != "" {
			line += "  " + output.Truncate(note, width-nameWidth-2)
		}

		output.Println(w, line)
	}
}

// ParseFilters parses key=value flags. Values for the same key are merged
// into one filter, preserving first-seen key order.
func ParseFilters(args []string) ([]*model.Filter, error) {
	var filters []*model.Filter

	for _, arg := range args {
		rawKey, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return nil, fmt.Errorf("invalid filter %q: want key=value", arg)
		}

		key, err := model.ParseFilterKey(rawKey)
		if err != nil {
			return nil, err
		}

		filters = mergeFilter(filters, key, value)
	}

	return filters, nil
}

func mergeFilter(filters []*model.Filter, key model.FilterKey, value string) []*model.Filter {
	existing, ok := lo.Find(filters, func(f *model.Filter) bool {
		k := f.Key()

		return k != nil && *k == key
	})
	if ok {
		existing.WithValues(value)

		return filters
	}

	return append(filters, model.NewFilter().WithKey(key).WithValues(value))
}

func parseSortOrder(s string) (provider.SortOrder, error) {
	switch provider.SortOrder(s) {
	case provider.SortOrderDefault, provider.SortOrderAsc, provider.SortOrderDesc:
		return provider.SortOrder(s), nil
	default:
		return "", fmt.Errorf("invalid sort order %q: want asc or desc", s)
	}
}
