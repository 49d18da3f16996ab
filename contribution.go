package backoffice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a contribution was received.
type PaymentMethod string

const (
	Cash         PaymentMethod = "cash"
	DDACC        PaymentMethod = "ddacc"
	MobileMoney  PaymentMethod = "mobile_money"
	BankTransfer PaymentMethod = "bank_transfer"
	Cheque       PaymentMethod = "cheque"
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case Cash, DDACC, MobileMoney, BankTransfer, Cheque:
		return PaymentMethod(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown payment method: %q", s)
	}
}

// Label returns the human form of the payment method.
func (p PaymentMethod) Label() string {
	switch p {
	case Cash:
		return "Cash"
	case DDACC:
		return "DDACC"
	case MobileMoney:
		return "Mobile Money"
	case BankTransfer:
		return "Bank Transfer"
	case Cheque:
		return "Cheque"
	default:
		return string(p)
	}
}

// DefaultFeeRate is the fee rate applied when the form leaves it blank: 3.000%.
var DefaultFeeRate = decimal.New(3000, -3)

var hundred = decimal.NewFromInt(100)

// Contribution records a single funds-received event for a client.
// Fees and the investable amount are derived fields: they are recomputed from
// the gross amount and fee rate on every save and are never set directly.
type Contribution struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID uint    `gorm:"not null;index" json:"client_id" validate:"required"`
	Client   *Client `json:"-" validate:"-"`

	Date               Date            `gorm:"type:date" json:"date" validate:"required"`
	ContributionAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"contribution_amount"`
	PaymentMethod      PaymentMethod   `gorm:"size:50" json:"payment_method" validate:"required,oneof=cash ddacc mobile_money bank_transfer cheque"`
	FeeRatePercentage  decimal.Decimal `gorm:"type:decimal(5,3)" json:"fee_rate_percentage"`
	Fees               decimal.Decimal `gorm:"type:decimal(10,2)" json:"fees"`
	InvestableAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"investable_amount"`

	Manager     string `gorm:"size:150" json:"manager" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
}

// NewContribution builds a contribution for a client. The caller supplies the
// fee rate; forms default it to DefaultFeeRate when left blank.
func NewContribution(clientID uint, day Date, amount decimal.Decimal, method PaymentMethod, rate decimal.Decimal, manager, description string) *Contribution {
	return &Contribution{
		ClientID:           clientID,
		Date:               day,
		ContributionAmount: amount,
		PaymentMethod:      method,
		FeeRatePercentage:  rate,
		Manager:            manager,
		Description:        description,
	}
}

// Recompute derives fees and the investable amount from the gross amount and
// fee rate. Fees are rounded to cents first so that fees plus investable is
// exactly the gross amount.
func (c *Contribution) Recompute() {
	c.Fees = c.ContributionAmount.Mul(c.FeeRatePercentage).Div(hundred).Round(2)
	c.InvestableAmount = c.ContributionAmount.Sub(c.Fees)
}

// Validate checks all field-level rules for the contribution.
func (c *Contribution) Validate() error {
	ve := fieldErrors(validate.Struct(c))
	if !c.ContributionAmount.IsPositive() {
		ve.Add("contribution_amount", "must be a positive amount")
	}
	if c.FeeRatePercentage.IsNegative() {
		ve.Add("fee_rate_percentage", "cannot be negative")
	}
	return ve.OrNil()
}

// Received returns the gross amount in the given currency, formatted the way
// statements show it.
func (c *Contribution) Received(currency Currency) string {
	return fmt.Sprintf("%s Received On: %s", M(c.ContributionAmount, string(currency)), c.Date.Display())
}
