package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is an imported bank statement line. InvoiceID is written once,
// when the transaction is reconciled.
type BankTransaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	InvoiceID   *string         `json:"invoiceId"`
}

// IsCandidate reports whether the transaction can be auto-reconciled:
// not linked yet and incoming.
func (t BankTransaction) IsCandidate() bool {
	return t.InvoiceID == nil && t.Amount.IsPositive()
}

// OpenInvoice is the reconciliation view of an invoice awaiting payment.
type OpenInvoice struct {
	ID         string          `json:"id"`
	Number     string          `json:"invoiceNumber"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	Date       time.Time       `json:"date"`
}

// ReconciliationMatch is a committed transaction/invoice pair.
type ReconciliationMatch struct {
	TransactionID string  `json:"transactionId"`
	InvoiceID     string  `json:"invoiceId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Confidence    float64 `json:"confidence"`
}

// ReconciliationResult summarises one reconciliation run.
type ReconciliationResult struct {
	Matched int                   `json:"matched"`
	Scanned int                   `json:"scanned"`
	Failed  int                   `json:"failed"`
	Details []ReconciliationMatch `json:"details"`
}
