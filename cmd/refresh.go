package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice/renderer"
)

type refreshCmd struct {
	date string
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "recompute projected values for the whole book" }
func (*refreshCmd) Usage() string {
	return `lisp refresh [-d <date>]

  Recomputes the expected current value and status of every investment as of
  the given date. A broken record is reported and skipped, never blocking the
  rest of the book.
`
}

func (p *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Valuation date (YYYY-MM-DD). Defaults to today.")
}

func (p *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	report, err := store.RefreshInvestments(asOf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Sweep(report))

	if len(report.Failures) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
