package renderer

import "github.com/lisp/backoffice"

// Clients renders the client book as a markdown table.
func Clients(clients []backoffice.Client) string {
	r := newRenderer()
	r.Printf("# Clients\n\n")
	if len(clients) == 0 {
		r.Printf("No clients on the book.\n")
		return r.String()
	}

	r.Printf("| ID | Name | Email | NRC | Goal | Risk | Target | Manager |\n")
	r.Printf("|---:|:---|:---|:---|:---|:---|---:|:---|\n")
	for _, c := range clients {
		r.Printf("| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			c.ID, c.FullName, c.Email, c.NRC, c.FinancialGoal, c.RiskLevel, c.Target(), c.Manager)
	}
	return r.String()
}
