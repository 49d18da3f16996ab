// Package renderer formats client records and reports as markdown strings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/lisp/backoffice"
	"github.com/shopspring/decimal"
)

// mdRenderer accumulates a markdown report.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// money formats a decimal amount in the client's currency, "ZMW 1,234.56" style.
func money(v decimal.Decimal, cur backoffice.Currency) string {
	return backoffice.M(v, string(cur)).String()
}
