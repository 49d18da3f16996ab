// Package backoffice keeps the books of a small investment practice: client
// profiles, the contributions that fund their accounts, and the investments
// deployed from those funds.
//
// Amounts are exact decimals. Fees, investable amounts, maturity dates,
// expected current values and statuses are derived fields recomputed at the
// write boundary, never set by hand. An investment can never deploy more than
// the client's investable contributions; the check and the write share one
// serializable transaction.
package backoffice
