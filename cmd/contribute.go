package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice"
)

type contributeCmd struct {
	client uint
	date   string
	amount string
	method string
	rate   string
	desc   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record funds received from a client" }
func (*contributeCmd) Usage() string {
	return `lisp contribute -c <client_id> -amount <amount> [-method <method>] [-rate <pct>] [-d <date>]

  Records a contribution. The fee is deducted at the given rate (3% by default)
  and the remainder becomes investable for the client.
`
}

func (p *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&p.client, "c", 0, "Client id the contribution belongs to.")
	f.StringVar(&p.date, "d", "", "Date the funds were received (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.amount, "amount", "", "Gross amount received.")
	f.StringVar(&p.method, "method", string(backoffice.Cash), "Payment method: cash, ddacc, mobile_money, bank_transfer or cheque.")
	f.StringVar(&p.rate, "rate", "", "Fee rate percentage. Defaults to 3.")
	f.StringVar(&p.desc, "desc", "", "Free-form description.")
}

func (p *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	method, err := backoffice.ParsePaymentMethod(p.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	rate := backoffice.DefaultFeeRate
	if p.rate != "" {
		if rate, err = parseAmount("rate", p.rate); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	client, err := store.Client(p.client)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	c := backoffice.NewContribution(client.ID, day, amount, method, rate, *manager, p.desc)
	if err := store.RecordContribution(c); err != nil {
		return reportError(err)
	}

	cur := string(client.Currency)
	fmt.Printf("Recorded contribution #%d for %s: %s\n", c.ID, client.FullName, c.Received(client.Currency))
	fmt.Printf("Fees %s, investable %s\n", backoffice.M(c.Fees, cur), backoffice.M(c.InvestableAmount, cur))
	return subcommands.ExitSuccess
}
