package backoffice

import (
	"errors"
	"testing"
)

func TestClient_NormalizeContributionFrequency(t *testing.T) {
	tests := []struct {
		name string
		typ  ContributionType
		freq ContributionFrequency
		want ContributionFrequency
	}{
		{"lump sum forces once_off", LumpSum, Monthly, OnceOff},
		{"lump sum keeps once_off", LumpSum, OnceOff, OnceOff},
		{"regular keeps monthly", RegularContribution, Monthly, Monthly},
		{"regular keeps annual", RegularContribution, Annual, Annual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient("123456/78/9", "chanda@example.com")
			c.ContributionType = tt.typ
			c.ContributionFrequency = tt.freq
			c.NormalizeContributionFrequency()
			if c.ContributionFrequency != tt.want {
				t.Errorf("ContributionFrequency = %q, want %q", c.ContributionFrequency, tt.want)
			}
		})
	}
}

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Client)
		wantField string // empty means the client must be valid
	}{
		{"valid", func(c *Client) {}, ""},
		{"missing name", func(c *Client) { c.FullName = "" }, "full_name"},
		{"bad email", func(c *Client) { c.Email = "not-an-address" }, "email"},
		{"nrc too many check digits", func(c *Client) { c.NRC = "123456/78/90" }, "nrc"},
		{"nrc missing slashes", func(c *Client) { c.NRC = "123456789" }, "nrc"},
		{"nrc letters", func(c *Client) { c.NRC = "abcdef/gh/i" }, "nrc"},
		{"unknown risk level", func(c *Client) { c.RiskLevel = "reckless" }, "risk_level"},
		{"unknown currency", func(c *Client) { c.Currency = "EUR" }, "currency"},
		{"zero target", func(c *Client) { c.TargetAmount = dec("0") }, "target_amount"},
		{"negative expected contribution", func(c *Client) { c.ExpectedContribution = dec("-1") }, "expected_contribution"},
		{"missing manager", func(c *Client) { c.Manager = "" }, "manager"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient("123456/78/9", "chanda@example.com")
			tt.mutate(c)
			err := c.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if _, ok := ve.ByField()[tt.wantField]; !ok {
				t.Errorf("Validate() failures = %v, want one on %q", ve.Errors, tt.wantField)
			}
		})
	}
}

func TestClient_Validate_NRCMessage(t *testing.T) {
	c := newTestClient("12345/78/9", "chanda@example.com")
	err := c.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	msgs := ve.ByField()["nrc"]
	if len(msgs) != 1 || msgs[0] != "NRC must be in the format 123456/78/9" {
		t.Errorf("nrc messages = %v, want the format hint", msgs)
	}
}
