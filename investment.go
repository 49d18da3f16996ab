package backoffice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType is one of the fixed fund and instrument codes the practice
// can deploy capital into.
type InvestmentType string

const (
	FixedDeposit    InvestmentType = "fd"
	GovernmentBond  InvestmentType = "bond"
	TreasuryBill    InvestmentType = "t_bill"
	ABCBalancedFund InvestmentType = "abc_bf"
	ABCEquityFund   InvestmentType = "abc_ef"
	ABCMoneyMarket  InvestmentType = "abc_mmf"
	ABCUSDFund      InvestmentType = "abc_usdf"
	ABCUSDHighYield InvestmentType = "abc_usd_hyf"
	ABCZMWHighYield InvestmentType = "abc_zmw_hyf"
	MpileBalanced   InvestmentType = "mpile_bf"
	MpileGratuity   InvestmentType = "mpile_gf"
	MpileHighYield  InvestmentType = "mpile_hydf"
	MpileLocalEq    InvestmentType = "mpile_lef"
	MpileMoneyMkt   InvestmentType = "mpile_mmf"
	MpileOffshoreEq InvestmentType = "mpile_osef"
	MpileProperty   InvestmentType = "mpile_pf"
)

var investmentTypeLabels = map[InvestmentType]string{
	FixedDeposit:    "Fixed Deposit",
	GovernmentBond:  "Government Bond",
	TreasuryBill:    "Treasury Bill",
	ABCBalancedFund: "ABC Balanced Fund",
	ABCEquityFund:   "ABC Equity Fund",
	ABCMoneyMarket:  "ABC Money Market Fund",
	ABCUSDFund:      "ABC USD Fund",
	ABCUSDHighYield: "ABC USD High-Yield Fund",
	ABCZMWHighYield: "ABC ZMW High-Yield Fund",
	MpileBalanced:   "Mpile Balanced Fund",
	MpileGratuity:   "Mpile Gratuity Fund",
	MpileHighYield:  "Mpile High-Yield Debt Fund",
	MpileLocalEq:    "Mpile Local Equity Fund",
	MpileMoneyMkt:   "Mpile Money Market Fund",
	MpileOffshoreEq: "Mpile Offshore Equity Fund",
	MpileProperty:   "Mpile Property Fund",
}

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	t := InvestmentType(strings.ToLower(s))
	if _, ok := investmentTypeLabels[t]; !ok {
		return "", fmt.Errorf("unknown investment type: %q", s)
	}
	return t, nil
}

// Label returns the fund's display name.
func (t InvestmentType) Label() string {
	if label, ok := investmentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// InvestmentStatus tracks an investment's lifecycle: active until the current
// date passes the maturity date, completed after. The transition is one-way
// and time-driven, re-evaluated on every save.
type InvestmentStatus string

const (
	Active    InvestmentStatus = "active"
	Completed InvestmentStatus = "completed"
)

// daysPerYear approximates the length of a year including leap years.
var daysPerYear = decimal.New(36525, -2)

// powPrecision is the number of significant decimal digits kept by the
// fractional-year exponentiation.
const powPrecision = 12

// Investment records a single capital deployment for a client.
// MaturityDate, ExpectedCurrentValue and Status are derived: the maturity date
// is computed once on first save and then frozen, the other two are recomputed
// on every save from the elapsed time.
type Investment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID uint    `gorm:"not null;index" json:"client_id" validate:"required"`
	Client   *Client `json:"-" validate:"-"`

	DurationMonths                     int              `gorm:"column:investment_duration" json:"investment_duration"`
	StartDate                          Date             `gorm:"type:date" json:"start_date" validate:"required"`
	MaturityDate                       Date             `gorm:"type:date" json:"maturity_date"`
	InvestmentType                     InvestmentType   `gorm:"size:50" json:"investment_type" validate:"required,oneof=fd bond t_bill abc_bf abc_ef abc_mmf abc_usdf abc_usd_hyf abc_zmw_hyf mpile_bf mpile_gf mpile_hydf mpile_lef mpile_mmf mpile_osef mpile_pf"`
	InvestmentAmount                   decimal.Decimal  `gorm:"type:decimal(10,2)" json:"investment_amount"`
	ExpectedAnnualGrowthRatePercentage decimal.Decimal  `gorm:"type:decimal(5,3)" json:"expected_annual_growth_rate_percentage"`
	ExpectedCurrentValue               decimal.Decimal  `gorm:"type:decimal(12,2)" json:"expected_current_value"`
	Status                             InvestmentStatus `gorm:"size:20;default:active" json:"status"`

	Manager     string `gorm:"size:150" json:"manager" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
}

// EnsureMaturityDate computes the maturity date from the start date and
// duration on first save. Once set it is frozen: later edits to the duration
// or start date never move it.
func (v *Investment) EnsureMaturityDate() {
	if v.MaturityDate.IsZero() {
		v.MaturityDate = v.StartDate.AddMonths(v.DurationMonths)
	}
}

// Project recomputes the expected current value and status as of the given
// date. Growth compounds annually with a fractional-year exponent:
//
//	value = amount × (1 + rate/100)^(days/365.25)
//
// where days stop accruing at the maturity date. The maturity date must
// already be set.
func (v *Investment) Project(asOf Date) error {
	days := decimal.NewFromInt(int64(asOf.Min(v.MaturityDate).DaysSince(v.StartDate)))
	years := days.Div(daysPerYear)

	growth := decimal.New(1, 0).Add(v.ExpectedAnnualGrowthRatePercentage.Div(hundred))
	factor, err := growth.PowWithPrecision(years, powPrecision)
	if err != nil {
		return fmt.Errorf("cannot project value with growth rate %s%%: %w", v.ExpectedAnnualGrowthRatePercentage, err)
	}
	v.ExpectedCurrentValue = v.InvestmentAmount.Mul(factor).Round(2)

	if asOf.After(v.MaturityDate) {
		v.Status = Completed
	} else {
		v.Status = Active
	}
	return nil
}

// Validate checks all field-level rules for the investment.
func (v *Investment) Validate() error {
	ve := fieldErrors(validate.Struct(v))
	if v.DurationMonths <= 0 {
		ve.Add("investment_duration", "must be a positive number of months")
	}
	if !v.InvestmentAmount.IsPositive() {
		ve.Add("investment_amount", "must be a positive amount")
	}
	// A rate at or below -100% would wipe the principal and makes the
	// fractional exponentiation undefined.
	if v.ExpectedAnnualGrowthRatePercentage.LessThanOrEqual(hundred.Neg()) {
		ve.Add("expected_annual_growth_rate_percentage", "must be greater than -100")
	}
	return ve.OrNil()
}

// Invested returns the deployed amount in the given currency, formatted the
// way statements show it.
func (v *Investment) Invested(currency Currency) string {
	return fmt.Sprintf("%s Invested On: %s", M(v.InvestmentAmount, string(currency)), v.StartDate.Display())
}
