package backoffice

import (
	"errors"
	"fmt"
	"log"
)

// This file contains the maintenance sweep that re-projects every investment.

// SweepFailure records one investment the sweep could not refresh.
type SweepFailure struct {
	InvestmentID uint
	ClientID     uint
	Err          error
}

// SweepReport summarizes a refresh pass over the whole book.
type SweepReport struct {
	Refreshed int
	Failures  []SweepFailure
}

// Err joins the failure errors, or returns nil when every item refreshed.
func (r *SweepReport) Err() error {
	var errs error
	for _, f := range r.Failures {
		errs = errors.Join(errs, fmt.Errorf("investment %d (client %d): %w", f.InvestmentID, f.ClientID, f.Err))
	}
	return errs
}

// RefreshInvestments re-projects the expected current value and status of
// every investment as of the given date. Each item is saved in its own
// transaction with validation skipped, so one broken record never blocks the
// rest of the book: the sweep logs it, counts it as a failure and moves on.
func (s *Store) RefreshInvestments(asOf Date) (*SweepReport, error) {
	investments, err := s.AllInvestments()
	if err != nil {
		return nil, fmt.Errorf("could not load investments: %w", err)
	}

	report := &SweepReport{}
	for i := range investments {
		v := &investments[i]
		if err := s.RecordInvestment(v, asOf, false); err != nil {
			log.Printf("failed to refresh investment %d (client %d): %v", v.ID, v.ClientID, err)
			report.Failures = append(report.Failures, SweepFailure{
				InvestmentID: v.ID,
				ClientID:     v.ClientID,
				Err:          err,
			})
			continue
		}
		report.Refreshed++
	}
	return report, nil
}
