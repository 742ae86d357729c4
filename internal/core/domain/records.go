package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind discriminates the ledger record variants.
type RecordKind string

const (
	KindInvoice         RecordKind = "invoice"
	KindExpense         RecordKind = "expense"
	KindSupplierInvoice RecordKind = "supplier_invoice"
)

// IsValid reports whether k names a known record variant.
func (k RecordKind) IsValid() bool {
	switch k {
	case KindInvoice, KindExpense, KindSupplierInvoice:
		return true
	}
	return false
}

// LedgerRecord is the closed set of transactional records the engine aggregates.
// Only Invoice, Expense and SupplierInvoice implement it.
type LedgerRecord interface {
	Kind() RecordKind
	RecordID() string
	RecordDate() time.Time
	// Realized reports whether the record counts toward recognition (cash basis).
	Realized() bool
	sealed()
}

// InvoiceStatus is the lifecycle state of a sales invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a sales invoice. VATRate is a percentage (20 = 20%).
type Invoice struct {
	ID         string          `json:"id"`
	Number     string          `json:"invoiceNumber"`
	ClientID   string          `json:"clientId"`
	ClientName string          `json:"clientName"`
	TotalHT    decimal.Decimal `json:"totalHT"`
	TotalTTC   decimal.Decimal `json:"totalTTC"`
	VATRate    decimal.Decimal `json:"vatRate"`
	Status     InvoiceStatus   `json:"status"`
	Date       time.Time       `json:"date"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
}

func (i Invoice) Kind() RecordKind      { return KindInvoice }
func (i Invoice) RecordID() string      { return i.ID }
func (i Invoice) RecordDate() time.Time { return i.Date }
func (i Invoice) Realized() bool        { return i.Status == InvoicePaid }
func (Invoice) sealed()                 {}

// VATAmount is the tax component of the invoice.
func (i Invoice) VATAmount() decimal.Decimal {
	return i.TotalTTC.Sub(i.TotalHT)
}

// closedInvoiceStatuses never take part in reconciliation.
var closedInvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoicePaid, InvoiceCancelled}

// ClosedInvoiceStatuses lists the statuses of invoices that no longer await
// payment, as stored strings for repository filters.
func ClosedInvoiceStatuses() []string {
	out := make([]string, len(closedInvoiceStatuses))
	for i, st := range closedInvoiceStatuses {
		out[i] = string(st)
	}
	return out
}

// IsOpen reports whether the invoice still awaits payment.
func (i Invoice) IsOpen() bool {
	for _, st := range closedInvoiceStatuses {
		if i.Status == st {
			return false
		}
	}
	return true
}

// Expense is a direct expense. Amount excludes VAT.
type Expense struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	VATAmount decimal.Decimal `json:"vatAmount"`
	VATRate   decimal.Decimal `json:"vatRate"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
}

func (e Expense) Kind() RecordKind      { return KindExpense }
func (e Expense) RecordID() string      { return e.ID }
func (e Expense) RecordDate() time.Time { return e.Date }
func (e Expense) Realized() bool        { return true }
func (Expense) sealed()                 {}

// PaymentStatus is the settlement state of a supplier invoice.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// SupplierInvoice is a purchase invoice. Amount excludes VAT.
type SupplierInvoice struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	Date          time.Time       `json:"date"`
}

func (s SupplierInvoice) Kind() RecordKind      { return KindSupplierInvoice }
func (s SupplierInvoice) RecordID() string      { return s.ID }
func (s SupplierInvoice) RecordDate() time.Time { return s.Date }
func (s SupplierInvoice) Realized() bool        { return s.PaymentStatus == PaymentPaid }
func (SupplierInvoice) sealed()                 {}

// LedgerRecords groups the record sets fetched for one user and period.
type LedgerRecords struct {
	Invoices         []Invoice
	Expenses         []Expense
	SupplierInvoices []SupplierInvoice
}

// All flattens the record sets, invoices first.
func (r LedgerRecords) All() []LedgerRecord {
	out := make([]LedgerRecord, 0, len(r.Invoices)+len(r.Expenses)+len(r.SupplierInvoices))
	for _, inv := range r.Invoices {
		out = append(out, inv)
	}
	for _, exp := range r.Expenses {
		out = append(out, exp)
	}
	for _, si := range r.SupplierInvoices {
		out = append(out, si)
	}
	return out
}

// Recognized reports whether rec is realized and dated inside p.
func Recognized(rec LedgerRecord, p Period) bool {
	return rec.Realized() && p.Contains(rec.RecordDate())
}
