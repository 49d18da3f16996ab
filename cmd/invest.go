package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice"
)

type investCmd struct {
	client   uint
	amount   string
	typ      string
	duration int
	start    string
	rate     string
	desc     string
	force    bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "deploy a client's investable funds" }
func (*investCmd) Usage() string {
	return `lisp invest -c <client_id> -amount <amount> -type <type> -months <n> -rate <pct>

  Records an investment for a client. The amount must not exceed the client's
  investable contributions not yet deployed. The maturity date is derived from
  the start date and duration on first save and then frozen.
`
}

func (p *investCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&p.client, "c", 0, "Client id the investment belongs to.")
	f.StringVar(&p.amount, "amount", "", "Amount to invest.")
	f.StringVar(&p.typ, "type", "", "Investment type code, e.g. fd, t_bill or mpile_mmf. See 'lisp topic funds'.")
	f.IntVar(&p.duration, "months", 0, "Investment duration in calendar months.")
	f.StringVar(&p.start, "start", "", "Start date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.rate, "rate", "0", "Expected annual growth rate percentage.")
	f.StringVar(&p.desc, "desc", "", "Free-form description.")
	f.BoolVar(&p.force, "force", false, "Record the investment even if validation or the funds check fails.")
}

func (p *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseDay(p.start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	typ, err := backoffice.ParseInvestmentType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseAmount("rate", p.rate)
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

	client, err := store.Client(p.client)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	v := &backoffice.Investment{
		ClientID:                           client.ID,
		DurationMonths:                     p.duration,
		StartDate:                          start,
		InvestmentType:                     typ,
		InvestmentAmount:                   amount,
		ExpectedAnnualGrowthRatePercentage: rate,
		Manager:                            *manager,
		Description:                        p.desc,
	}
	if err := store.RecordInvestment(v, today(), !p.force); err != nil {
		return reportError(err)
	}

	cur := string(client.Currency)
	fmt.Printf("Recorded investment #%d in %s for %s\n", v.ID, v.InvestmentType.Label(), client.FullName)
	fmt.Printf("Matures %s, expected value today %s (%s)\n",
		v.MaturityDate.Display(), backoffice.M(v.ExpectedCurrentValue, cur), v.Status)
	return subcommands.ExitSuccess
}
