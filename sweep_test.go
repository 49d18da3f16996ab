package backoffice

import "testing"

func TestStore_RefreshInvestments(t *testing.T) {
	s := newTestStore(t)
	c := newTestClient("123456/78/9", "chanda@example.com")
	if err := s.SaveClient(c); err != nil {
		t.Fatalf("SaveClient() error = %v", err)
	}
	if err := s.RecordContribution(NewContribution(c.ID, NewDate(2024, 1, 10), dec("10000"), Cash, dec("0"), "Besa Phiri", "")); err != nil {
		t.Fatalf("RecordContribution() error = %v", err)
	}

	asOf := NewDate(2024, 6, 1)
	first := newTestInvestment(c.ID, "1000")
	second := newTestInvestment(c.ID, "2000")
	second.StartDate = NewDate(2024, 3, 1)
	for _, v := range []*Investment{first, second} {
		if err := s.RecordInvestment(v, asOf, true); err != nil {
			t.Fatalf("RecordInvestment() error = %v", err)
		}
	}

	// Plant a row whose growth rate makes the projection impossible. It can
	// only exist in a book written before the rate rule was enforced, so it
	// goes in underneath the save path.
	poisoned := newTestInvestment(c.ID, "500")
	poisoned.ExpectedAnnualGrowthRatePercentage = dec("-150")
	poisoned.EnsureMaturityDate()
	if err := s.db.Create(poisoned).Error; err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	later := NewDate(2024, 9, 1)
	report, err := s.RefreshInvestments(later)
	if err != nil {
		t.Fatalf("RefreshInvestments() error = %v", err)
	}
	if report.Refreshed != 2 {
		t.Errorf("Refreshed = %d, want 2", report.Refreshed)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("Failures = %d, want 1", len(report.Failures))
	}
	if f := report.Failures[0]; f.InvestmentID != poisoned.ID || f.ClientID != c.ID {
		t.Errorf("failure = %+v, want investment %d of client %d", f, poisoned.ID, c.ID)
	}
	if report.Err() == nil {
		t.Error("Err() = nil, want the joined failure")
	}

	// The healthy rows moved forward with the refresh date.
	got, err := s.Investment(first.ID)
	if err != nil {
		t.Fatalf("Investment() error = %v", err)
	}
	if !got.ExpectedCurrentValue.GreaterThan(first.ExpectedCurrentValue) {
		t.Errorf("ExpectedCurrentValue = %s, want above %s after refresh", got.ExpectedCurrentValue, first.ExpectedCurrentValue)
	}
}

func TestStore_RefreshInvestments_CompletesMatured(t *testing.T) {
	s := newTestStore(t)
	c := newTestClient("123456/78/9", "chanda@example.com")
	if err := s.SaveClient(c); err != nil {
		t.Fatalf("SaveClient() error = %v", err)
	}
	if err := s.RecordContribution(NewContribution(c.ID, NewDate(2024, 1, 10), dec("5000"), Cash, dec("0"), "Besa Phiri", "")); err != nil {
		t.Fatalf("RecordContribution() error = %v", err)
	}

	v := newTestInvestment(c.ID, "1000")
	v.DurationMonths = 3 // matures 2024-04-15
	if err := s.RecordInvestment(v, NewDate(2024, 2, 1), true); err != nil {
		t.Fatalf("RecordInvestment() error = %v", err)
	}
	if v.Status != Active {
		t.Fatalf("Status = %q, want %q", v.Status, Active)
	}

	if _, err := s.RefreshInvestments(NewDate(2024, 4, 16)); err != nil {
		t.Fatalf("RefreshInvestments() error = %v", err)
	}
	got, err := s.Investment(v.ID)
	if err != nil {
		t.Fatalf("Investment() error = %v", err)
	}
	if got.Status != Completed {
		t.Errorf("Status = %q, want %q", got.Status, Completed)
	}
}
