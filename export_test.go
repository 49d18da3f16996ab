package backoffice

import (
	"bytes"
	"strings"
	"testing"
)

func TestStore_ExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	c := newTestClient("123456/78/9", "chanda@example.com")
	if err := src.SaveClient(c); err != nil {
		t.Fatalf("SaveClient() error = %v", err)
	}
	if err := src.RecordContribution(NewContribution(c.ID, NewDate(2024, 1, 10), dec("1000"), Cash, DefaultFeeRate, "Besa Phiri", "")); err != nil {
		t.Fatalf("RecordContribution() error = %v", err)
	}
	if err := src.RecordInvestment(newTestInvestment(c.ID, "400"), NewDate(2024, 2, 1), true); err != nil {
		t.Fatalf("RecordInvestment() error = %v", err)
	}

	var archive bytes.Buffer
	if err := src.ExportBook(&archive); err != nil {
		t.Fatalf("ExportBook() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(archive.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("ExportBook() wrote %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], `"record":"client"`) {
		t.Errorf("first line should be the client record, got %s", lines[0])
	}

	dst := newTestStore(t)
	if err := dst.ImportBook(&archive); err != nil {
		t.Fatalf("ImportBook() error = %v", err)
	}

	want, err := src.Summary(c.ID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	got, err := dst.Summary(c.ID)
	if err != nil {
		t.Fatalf("Summary() after import error = %v", err)
	}
	if !got.TotalReceived.Equal(want.TotalReceived) ||
		!got.TotalInvested.Equal(want.TotalInvested) ||
		!got.AvailableToInvest.Equal(want.AvailableToInvest) {
		t.Errorf("restored totals = %s/%s/%s, want %s/%s/%s",
			got.TotalReceived, got.TotalInvested, got.AvailableToInvest,
			want.TotalReceived, want.TotalInvested, want.AvailableToInvest)
	}
	if len(got.Contributions) != 1 || len(got.Investments) != 1 {
		t.Fatalf("restored rows = %d contributions, %d investments, want 1 and 1",
			len(got.Contributions), len(got.Investments))
	}
	if got.Investments[0].MaturityDate != want.Investments[0].MaturityDate {
		t.Errorf("restored MaturityDate = %s, want %s",
			got.Investments[0].MaturityDate, want.Investments[0].MaturityDate)
	}
}

func TestStore_ImportBook_RefusesNonEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveClient(newTestClient("123456/78/9", "chanda@example.com")); err != nil {
		t.Fatalf("SaveClient() error = %v", err)
	}
	err := s.ImportBook(strings.NewReader(`{"record":"client","id":9}`))
	if err == nil || !strings.Contains(err.Error(), "non-empty") {
		t.Errorf("ImportBook() error = %v, want non-empty book refusal", err)
	}
}

func TestStore_ImportBook_RejectsUnknownKind(t *testing.T) {
	s := newTestStore(t)
	err := s.ImportBook(strings.NewReader(`{"record":"security"}`))
	if err == nil || !strings.Contains(err.Error(), "unknown record kind") {
		t.Errorf("ImportBook() error = %v, want unknown kind failure", err)
	}
}
