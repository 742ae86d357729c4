package domain

import "github.com/shopspring/decimal"

// EntrySide indicates whether a posting is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Posting is one leg produced by posting a ledger record to a chart account.
type Posting struct {
	AccountCode string          `json:"accountCode"`
	Side        EntrySide       `json:"side"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	Source      RecordKind      `json:"source"`
	RecordID    string          `json:"recordId"`
}
