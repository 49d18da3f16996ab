package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/lisp/backoffice"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testClient() backoffice.Client {
	return backoffice.Client{
		ID:                    1,
		FullName:              "Chanda Mwansa",
		Email:                 "chanda@example.com",
		NRC:                   "123456/78/9",
		DateOfJoining:         backoffice.NewDate(2024, 1, 2),
		RiskLevel:             backoffice.RiskMedium,
		ContributionType:      backoffice.RegularContribution,
		ContributionFrequency: backoffice.Monthly,
		FinancialGoal:         backoffice.Retirement,
		TargetAmount:          d("50000"),
		Currency:              backoffice.ZMW,
		Manager:               "Besa Phiri",
	}
}

func TestStatement(t *testing.T) {
	sum := &backoffice.ClientSummary{
		Client: testClient(),
		Contributions: []backoffice.Contribution{{
			Date:               backoffice.NewDate(2024, 1, 10),
			ContributionAmount: d("1000"),
			PaymentMethod:      backoffice.Cash,
			Fees:               d("30"),
			InvestableAmount:   d("970"),
		}},
		Investments: []backoffice.Investment{{
			StartDate:                          backoffice.NewDate(2024, 2, 1),
			InvestmentType:                     backoffice.FixedDeposit,
			InvestmentAmount:                   d("400"),
			DurationMonths:                     12,
			MaturityDate:                       backoffice.NewDate(2025, 2, 1),
			ExpectedAnnualGrowthRatePercentage: d("10"),
			ExpectedCurrentValue:               d("412.34"),
			Status:                             backoffice.Active,
		}},
		TotalReceived:     d("1000"),
		TotalFees:         d("30"),
		TotalInvestable:   d("970"),
		TotalInvested:     d("400"),
		AvailableToInvest: d("570"),
	}

	want := `# Statement for Chanda Mwansa

* Email: chanda@example.com
* NRC: 123456/78/9
* Joined: 02/01/2024
* Goal: retirement towards ZMW 50,000.00
* Plan: regular_contribution monthly (medium risk)
* Manager: Besa Phiri

## Contributions

| Date | Amount | Method | Fees | Investable |
|:---|---:|:---|---:|---:|
| 10/01/2024 | ZMW 1,000.00 | Cash | ZMW 30.00 | ZMW 970.00 |

## Investments

| Start | Type | Amount | Months | Maturity | Rate | Expected Value | Status |
|:---|:---|---:|---:|:---|---:|---:|:---|
| 01/02/2024 | Fixed Deposit | ZMW 400.00 | 12 | 01/02/2025 | 10% | ZMW 412.34 | active |

## Totals

| Received | Fees | Investable | Invested | Available |
|---:|---:|---:|---:|---:|
| ZMW 1,000.00 | ZMW 30.00 | ZMW 970.00 | ZMW 400.00 | ZMW 570.00 |
`
	if got := Statement(sum); got != want {
		t.Errorf("Statement() mismatch:\n--- want\n%s\n+++ got\n%s", want, got)
	}
}

func TestStatement_EmptySections(t *testing.T) {
	sum := &backoffice.ClientSummary{Client: testClient()}
	got := Statement(sum)
	if !strings.Contains(got, "No contributions recorded.") {
		t.Errorf("Statement() missing empty contributions note:\n%s", got)
	}
	if !strings.Contains(got, "No investments recorded.") {
		t.Errorf("Statement() missing empty investments note:\n%s", got)
	}
}

func TestClients(t *testing.T) {
	got := Clients([]backoffice.Client{testClient()})
	wantRow := "| 1 | Chanda Mwansa | chanda@example.com | 123456/78/9 | retirement | medium | ZMW 50,000.00 | Besa Phiri |"
	if !strings.Contains(got, wantRow) {
		t.Errorf("Clients() missing row %q in:\n%s", wantRow, got)
	}

	if got := Clients(nil); !strings.Contains(got, "No clients on the book.") {
		t.Errorf("Clients(nil) missing empty note:\n%s", got)
	}
}

func TestSweep(t *testing.T) {
	report := &backoffice.SweepReport{
		Refreshed: 2,
		Failures: []backoffice.SweepFailure{
			{InvestmentID: 7, ClientID: 3, Err: errors.New("boom")},
		},
	}
	want := `# Refresh Report

Refreshed 2 investment(s).

## Failures

| Investment | Client | Error |
|---:|---:|:---|
| 7 | 3 | boom |
`
	if got := Sweep(report); got != want {
		t.Errorf("Sweep() mismatch:\n--- want\n%s\n+++ got\n%s", want, got)
	}

	clean := Sweep(&backoffice.SweepReport{Refreshed: 5})
	if strings.Contains(clean, "Failures") {
		t.Errorf("Sweep() without failures should not render the failures section:\n%s", clean)
	}
}
