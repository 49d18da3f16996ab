package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice/renderer"
)

type statementCmd struct {
	client uint
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show a client's statement" }
func (*statementCmd) Usage() string {
	return `lisp statement -c <client_id>

  Shows a client's profile, their contributions and investments, and the
  aggregate totals including the amount still available for investment.
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&p.client, "c", 0, "Client id to report on.")
}

func (p *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	sum, err := store.Summary(p.client)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Statement(sum))
	return subcommands.ExitSuccess
}
