package mapping

import (
	"strings"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	inv := domain.Invoice{
		ID:         m.ID,
		Number:     stringOrEmpty(m.InvoiceNumber),
		ClientID:   stringOrEmpty(m.ClientID),
		ClientName: stringOrEmpty(m.ClientName),
		TotalHT:    decimalOrZero(m.TotalHT),
		TotalTTC:   decimalOrZero(m.TotalTTC),
		VATRate:    decimalOrZero(m.TaxRate),
		Status:     domain.InvoiceStatus(strings.ToLower(m.Status)),
		Date:       m.InvoiceDate,
	}
	if m.PaidAt.Valid {
		paid := m.PaidAt.Time
		inv.PaidDate = &paid
	}
	return inv
}

// ToDomainOpenInvoice converts a model Invoice to the reconciliation view of it.
func ToDomainOpenInvoice(m models.Invoice) domain.OpenInvoice {
	return domain.OpenInvoice{
		ID:         m.ID,
		Number:     stringOrEmpty(m.InvoiceNumber),
		ClientName: stringOrEmpty(m.ClientName),
		Total:      decimalOrZero(m.TotalTTC),
		Date:       m.InvoiceDate,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:        m.ID,
		Amount:    decimalOrZero(m.Amount),
		VATAmount: decimalOrZero(m.TaxAmount),
		VATRate:   decimalOrZero(m.TaxRate),
		Category:  stringOrEmpty(m.Category),
		Date:      m.ExpenseDate,
	}
}

// ToDomainSupplierInvoice converts a model SupplierInvoice to a domain SupplierInvoice
func ToDomainSupplierInvoice(m models.SupplierInvoice) domain.SupplierInvoice {
	return domain.SupplierInvoice{
		ID:            m.ID,
		Amount:        decimalOrZero(m.TotalAmount),
		VATAmount:     decimalOrZero(m.VATAmount),
		PaymentStatus: domain.PaymentStatus(strings.ToLower(stringOrEmpty(m.PaymentStatus))),
		Date:          m.InvoiceDate,
	}
}

// ToDomainBankTransaction converts a model BankTransaction to a domain BankTransaction
func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	tx := domain.BankTransaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.TransactionDate,
		Reference:   stringOrEmpty(m.Reference),
		Description: stringOrEmpty(m.Description),
	}
	if m.InvoiceID.Valid && m.InvoiceID.String != "" {
		invoiceID := m.InvoiceID.String
		tx.InvoiceID = &invoiceID
	}
	return tx
}

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice, userID string) models.Invoice {
	m := models.Invoice{
		ID:            d.ID,
		UserID:        userID,
		InvoiceNumber: ToNullString(d.Number),
		ClientID:      ToNullString(d.ClientID),
		ClientName:    ToNullString(d.ClientName),
		TotalHT:       ToNullDecimal(&d.TotalHT),
		TotalTTC:      ToNullDecimal(&d.TotalTTC),
		TaxRate:       ToNullDecimal(&d.VATRate),
		Status:        string(d.Status),
		InvoiceDate:   d.Date,
	}
	if d.PaidDate != nil {
		m.PaidAt.Time, m.PaidAt.Valid = *d.PaidDate, true
	}
	return m
}

// ToDomainSlice converts a slice of models with the given conversion.
func ToDomainSlice[M any, D any](ms []M, convert func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = convert(m)
	}
	return ds
}
