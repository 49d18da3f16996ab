package backoffice

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build exact decimals from const strings.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "book.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestClient returns a valid client. NRC and email are parameters because
// both carry uniqueness constraints.
func newTestClient(nrc, email string) *Client {
	return &Client{
		FullName:              "Chanda Mwansa",
		Email:                 email,
		Phone:                 "+260971234567",
		City:                  "Lusaka",
		DateOfBirth:           NewDate(1990, 4, 12),
		NRC:                   nrc,
		DateOfJoining:         NewDate(2024, 1, 2),
		RiskLevel:             RiskMedium,
		ContributionType:      RegularContribution,
		ContributionFrequency: Monthly,
		FinancialGoal:         Retirement,
		TargetAmount:          dec("50000"),
		ExpectedContribution:  dec("1000"),
		Currency:              ZMW,
		Manager:               "Besa Phiri",
	}
}

// newTestInvestment returns a valid investment for the client.
func newTestInvestment(clientID uint, amount string) *Investment {
	return &Investment{
		ClientID:                           clientID,
		DurationMonths:                     12,
		StartDate:                          NewDate(2024, 1, 15),
		InvestmentType:                     FixedDeposit,
		InvestmentAmount:                   dec(amount),
		ExpectedAnnualGrowthRatePercentage: dec("10"),
		Manager:                            "Besa Phiri",
	}
}
