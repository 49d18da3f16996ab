package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmClientCmd struct{}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "remove a client and all their records" }
func (*rmClientCmd) Usage() string {
	return `lisp rm-client <client_id>

  Removes a client from the book. The client's contributions and investments
  are removed with them.
`
}

func (c *rmClientCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseUint(f.Arg(0), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid client id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.DeleteClient(uint(id)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed client #%d and all their records\n", id)
	return subcommands.ExitSuccess
}
