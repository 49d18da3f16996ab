package renderer

import "github.com/lisp/backoffice"

// Sweep renders the outcome of a refresh pass over the investment book.
func Sweep(report *backoffice.SweepReport) string {
	r := newRenderer()
	r.Printf("# Refresh Report\n\n")
	r.Printf("Refreshed %d investment(s).\n", report.Refreshed)
	if len(report.Failures) == 0 {
		return r.String()
	}

	r.Printf("\n## Failures\n\n")
	r.Printf("| Investment | Client | Error |\n")
	r.Printf("|---:|---:|:---|\n")
	for _, f := range report.Failures {
		r.Printf("| %d | %d | %v |\n", f.InvestmentID, f.ClientID, f.Err)
	}
	return r.String()
}
