package renderer

import "github.com/lisp/backoffice"

// Statement renders a client's full statement: profile, contributions,
// investments, and the aggregate totals.
func Statement(sum *backoffice.ClientSummary) string {
	c := sum.Client
	r := newRenderer()

	r.Printf("# Statement for %s\n\n", c.FullName)
	r.Printf("* Email: %s\n", c.Email)
	r.Printf("* NRC: %s\n", c.NRC)
	r.Printf("* Joined: %s\n", c.DateOfJoining.Display())
	r.Printf("* Goal: %s towards %s\n", c.FinancialGoal, c.Target())
	r.Printf("* Plan: %s %s (%s risk)\n", c.ContributionType, c.ContributionFrequency, c.RiskLevel)
	r.Printf("* Manager: %s\n\n", c.Manager)

	r.Printf("## Contributions\n\n")
	if len(sum.Contributions) == 0 {
		r.Printf("No contributions recorded.\n\n")
	} else {
		r.Printf("| Date | Amount | Method | Fees | Investable |\n")
		r.Printf("|:---|---:|:---|---:|---:|\n")
		for _, row := range sum.Contributions {
			r.Printf("| %s | %s | %s | %s | %s |\n",
				row.Date.Display(),
				money(row.ContributionAmount, c.Currency),
				row.PaymentMethod.Label(),
				money(row.Fees, c.Currency),
				money(row.InvestableAmount, c.Currency))
		}
		r.Printf("\n")
	}

	r.Printf("## Investments\n\n")
	if len(sum.Investments) == 0 {
		r.Printf("No investments recorded.\n\n")
	} else {
		r.Printf("| Start | Type | Amount | Months | Maturity | Rate | Expected Value | Status |\n")
		r.Printf("|:---|:---|---:|---:|:---|---:|---:|:---|\n")
		for _, row := range sum.Investments {
			r.Printf("| %s | %s | %s | %d | %s | %s%% | %s | %s |\n",
				row.StartDate.Display(),
				row.InvestmentType.Label(),
				money(row.InvestmentAmount, c.Currency),
				row.DurationMonths,
				row.MaturityDate.Display(),
				row.ExpectedAnnualGrowthRatePercentage,
				money(row.ExpectedCurrentValue, c.Currency),
				row.Status)
		}
		r.Printf("\n")
	}

	r.Printf("## Totals\n\n")
	r.Printf("| Received | Fees | Investable | Invested | Available |\n")
	r.Printf("|---:|---:|---:|---:|---:|\n")
	r.Printf("| %s | %s | %s | %s | %s |\n",
		money(sum.TotalReceived, c.Currency),
		money(sum.TotalFees, c.Currency),
		money(sum.TotalInvestable, c.Currency),
		money(sum.TotalInvested, c.Currency),
		money(sum.AvailableToInvest, c.Currency))
	return r.String()
}
