// Package cmd implements the CLI application to manage the client book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lisp/backoffice"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newClientCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")
	c.Register(&rmClientCmd{}, "clients")

	c.Register(&contributeCmd{}, "records")
	c.Register(&investCmd{}, "records")
	c.Register(&refreshCmd{}, "records")

	c.Register(&statementCmd{}, "reports")
	c.Register(&topicCmd{}, "reports")

	c.Register(&exportCmd{}, "archive")
	c.Register(&importCmd{}, "archive")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "backoffice.db", "Path to the client book database (SQLite)")
var manager = flag.String("manager", os.Getenv("BACKOFFICE_MANAGER"), "Staff member recording changes. Defaults to $BACKOFFICE_MANAGER.")

// OpenStore is the central function to open the client book database.
func OpenStore() (*backoffice.Store, error) {
	return backoffice.Open(*dbFile)
}

// today returns the current date, unless overridden for reproducible
// documentation runs.
func today() backoffice.Date {
	if v := os.Getenv("BACKOFFICE_TESTING_TODAY"); v != "" {
		d, err := backoffice.ParseDate(v)
		if err != nil {
			log.Printf("warning, ignoring invalid BACKOFFICE_TESTING_TODAY=%q: %v", v, err)
		} else {
			return d
		}
	}
	return backoffice.Today()
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// reportError prints a save failure; validation failures list one line per field.
func reportError(err error) subcommands.ExitStatus {
	var ve *backoffice.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fmt.Fprintln(os.Stderr, "Error:", fe.String())
		}
		return subcommands.ExitUsageError
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// parseAmount parses a decimal flag value.
func parseAmount(name, value string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s value %q: must be a decimal number", name, value)
	}
	return v, nil
}

// parseDay parses a date flag value, empty meaning today.
func parseDay(value string) (backoffice.Date, error) {
	if value == "" {
		return today(), nil
	}
	return backoffice.ParseDate(value)
}
