package backoffice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError is a single validation failure. Field is empty for failures that
// concern the record as a whole rather than one of its fields.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationError collects every field and non-field failure found while
// validating a record. Nothing is persisted when a save returns one.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.String())
	}
	return "invalid record: " + strings.Join(msgs, "; ")
}

// Add records a failure against a field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// AddNonField records a failure that is not attributable to a single field.
func (e *ValidationError) AddNonField(message string) {
	e.Errors = append(e.Errors, FieldError{Message: message})
}

// ByField groups the messages per field name, non-field messages under "".
func (e *ValidationError) ByField() map[string][]string {
	m := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		m[fe.Field] = append(m[fe.Field], fe.Message)
	}
	return m
}

// OrNil returns the error itself when it holds failures, nil otherwise.
// It lets validation code build up the error unconditionally and decide last.
func (e *ValidationError) OrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// InsufficientFundsError is the domain invariant failure raised when an
// investment would exceed the client's investable contributions.
type InsufficientFundsError struct {
	Currency  Currency
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("the investment amount of %s exceeds the amount left for investment for the client (%s)",
		M(e.Requested, string(e.Currency)), M(e.Available, string(e.Currency)))
}
