package backoffice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is one of the two currencies the practice operates in.
type Currency string

const (
	USD Currency = "USD"
	ZMW Currency = "ZMW"
)

// ParseCurrency parses a string into a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(s) {
	case "USD":
		return USD, nil
	case "ZMW":
		return ZMW, nil
	default:
		return "", fmt.Errorf("unknown currency: %q", s)
	}
}

// RiskLevel is a client's declared risk tolerance.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel parses a string into a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(strings.ToLower(s)) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown risk level: %q", s)
	}
}

// ContributionType is how a client funds their account.
type ContributionType string

const (
	LumpSum             ContributionType = "lump_sum"
	RegularContribution ContributionType = "regular_contribution"
)

// ParseContributionType parses a string into a ContributionType.
func ParseContributionType(s string) (ContributionType, error) {
	switch ContributionType(strings.ToLower(s)) {
	case LumpSum, RegularContribution:
		return ContributionType(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown contribution type: %q", s)
	}
}

// ContributionFrequency is how often a client is expected to contribute.
type ContributionFrequency string

const (
	Monthly    ContributionFrequency = "monthly"
	Quarterly  ContributionFrequency = "quarterly"
	SemiAnnual ContributionFrequency = "semi-annual"
	Annual     ContributionFrequency = "annual"
	OnceOff    ContributionFrequency = "once_off"
)

// ParseContributionFrequency parses a string into a ContributionFrequency.
func ParseContributionFrequency(s string) (ContributionFrequency, error) {
	switch ContributionFrequency(strings.ToLower(s)) {
	case Monthly, Quarterly, SemiAnnual, Annual, OnceOff:
		return ContributionFrequency(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown contribution frequency: %q", s)
	}
}

// FinancialGoal is what a client is saving towards.
type FinancialGoal string

const (
	Education     FinancialGoal = "education"
	Retirement    FinancialGoal = "retirement"
	EmergencyFund FinancialGoal = "emergency_fund"
	HomeOwnership FinancialGoal = "home_ownership"
	Business      FinancialGoal = "business"
)

// ParseFinancialGoal parses a string into a FinancialGoal.
func ParseFinancialGoal(s string) (FinancialGoal, error) {
	switch FinancialGoal(strings.ToLower(s)) {
	case Education, Retirement, EmergencyFund, HomeOwnership, Business:
		return FinancialGoal(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown financial goal: %q", s)
	}
}

// Client is one investor's profile. A client owns their contributions and
// investments; deleting the client removes those rows with it.
type Client struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName      string `gorm:"size:255" json:"full_name" validate:"required"`
	Email         string `gorm:"size:254;uniqueIndex" json:"email" validate:"required,email"`
	Phone         string `gorm:"size:15" json:"phone" validate:"required"`
	City          string `gorm:"size:50" json:"city" validate:"required"`
	DateOfBirth   Date   `gorm:"type:date" json:"date_of_birth" validate:"required"`
	NRC           string `gorm:"column:nrc;size:11;uniqueIndex" json:"nrc" validate:"required,nrc"`
	DateOfJoining Date   `gorm:"type:date" json:"date_of_joining" validate:"required"`

	RiskLevel             RiskLevel             `gorm:"size:10" json:"risk_level" validate:"required,oneof=low medium high"`
	ContributionType      ContributionType      `gorm:"size:50" json:"contribution_type" validate:"required,oneof=lump_sum regular_contribution"`
	ContributionFrequency ContributionFrequency `gorm:"size:50" json:"contribution_frequency" validate:"required,oneof=monthly quarterly semi-annual annual once_off"`
	FinancialGoal         FinancialGoal         `gorm:"size:50" json:"financial_goal" validate:"required,oneof=education retirement emergency_fund home_ownership business"`
	TargetAmount          decimal.Decimal       `gorm:"type:decimal(12,2)" json:"target_amount"`
	ExpectedContribution  decimal.Decimal       `gorm:"type:decimal(10,2)" json:"expected_contribution"`
	Currency              Currency              `gorm:"size:3" json:"currency" validate:"required,oneof=USD ZMW"`

	Manager string `gorm:"size:150" json:"manager" validate:"required"`

	Contributions []Contribution `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Investments   []Investment   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Client) String() string { return c.FullName }

// Target returns the client's target amount in their currency.
func (c *Client) Target() Money { return M(c.TargetAmount, string(c.Currency)) }

// PlannedContribution returns the expected periodic contribution in the client's currency.
func (c *Client) PlannedContribution() Money {
	return M(c.ExpectedContribution, string(c.Currency))
}

// NormalizeContributionFrequency forces the frequency to once_off for lump sum
// clients. It silently corrects the record instead of rejecting it, and runs
// on every save.
func (c *Client) NormalizeContributionFrequency() {
	if c.ContributionType == LumpSum {
		c.ContributionFrequency = OnceOff
	}
}

// Validate checks all field-level rules and returns a ValidationError listing
// every failure, or nil when the client is well formed.
func (c *Client) Validate() error {
	ve := fieldErrors(validate.Struct(c))
	if !c.TargetAmount.IsPositive() {
		ve.Add("target_amount", "must be a positive amount")
	}
	if c.ExpectedContribution.IsNegative() {
		ve.Add("expected_contribution", "cannot be negative")
	}
	return ve.OrNil()
}
