package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lisp/backoffice"
)

type newClientCmd struct {
	name      string
	email     string
	phone     string
	city      string
	dob       string
	nrc       string
	joined    string
	risk      string
	ctype     string
	frequency string
	goal      string
	target    string
	expected  string
	currency  string
}

func (*newClientCmd) Name() string     { return "new-client" }
func (*newClientCmd) Synopsis() string { return "register a new client on the book" }
func (*newClientCmd) Usage() string {
	return `lisp new-client -name <name> -email <email> -nrc <nrc> ...

  Registers a new client with their profile and investment plan. A lump sum
  contribution type always gets the once_off frequency, whatever -frequency says.
`
}

func (p *newClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Full name of the client.")
	f.StringVar(&p.email, "email", "", "Email address, unique on the book.")
	f.StringVar(&p.phone, "phone", "", "Phone number.")
	f.StringVar(&p.city, "city", "", "City of residence.")
	f.StringVar(&p.dob, "dob", "", "Date of birth (YYYY-MM-DD).")
	f.StringVar(&p.nrc, "nrc", "", "National Registration Card number, e.g. 123456/78/9.")
	f.StringVar(&p.joined, "joined", "", "Date of joining (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.risk, "risk", string(backoffice.RiskMedium), "Risk level: low, medium or high.")
	f.StringVar(&p.ctype, "type", string(backoffice.RegularContribution), "Contribution type: lump_sum or regular_contribution.")
	f.StringVar(&p.frequency, "frequency", string(backoffice.Monthly), "Contribution frequency: monthly, quarterly, semi-annual, annual or once_off.")
	f.StringVar(&p.goal, "goal", "", "Financial goal: education, retirement, emergency_fund, home_ownership or business.")
	f.StringVar(&p.target, "target", "", "Target amount to save towards.")
	f.StringVar(&p.expected, "expected", "0", "Expected amount per contribution.")
	f.StringVar(&p.currency, "currency", string(backoffice.ZMW), "Account currency: USD or ZMW.")
}

func (p *newClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dob, err := parseDay(p.dob)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	joined, err := parseDay(p.joined)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	risk, err := backoffice.ParseRiskLevel(p.risk)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ctype, err := backoffice.ParseContributionType(p.ctype)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	frequency, err := backoffice.ParseContributionFrequency(p.frequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	goal, err := backoffice.ParseFinancialGoal(p.goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	currency, err := backoffice.ParseCurrency(p.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	target, err := parseAmount("target", p.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	expected, err := parseAmount("expected", p.expected)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	client := &backoffice.Client{
		FullName:              p.name,
		Email:                 p.email,
		Phone:                 p.phone,
		City:                  p.city,
		DateOfBirth:           dob,
		NRC:                   p.nrc,
		DateOfJoining:         joined,
		RiskLevel:             risk,
		ContributionType:      ctype,
		ContributionFrequency: frequency,
		FinancialGoal:         goal,
		TargetAmount:          target,
		ExpectedContribution:  expected,
		Currency:              currency,
		Manager:               *manager,
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.SaveClient(client); err != nil {
		return reportError(err)
	}
	fmt.Printf("Created client #%d %s (%s)\n", client.ID, client.FullName, client.Currency)
	return subcommands.ExitSuccess
}
