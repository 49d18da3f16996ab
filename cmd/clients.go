package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice/renderer"
)

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list all clients on the book" }
func (*clientsCmd) Usage() string {
	return `lisp clients

  Lists every client with their profile essentials, ordered by name.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	clients, err := store.Clients()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Clients(clients))
	return subcommands.ExitSuccess
}
