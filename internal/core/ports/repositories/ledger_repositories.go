package repositories

import (
	"context"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// LedgerRecordReader reads the transactional records of a user. Implementations
// may return records outside the period; callers filter again.
type LedgerRecordReader interface {
	// ListInvoices retrieves the user's sales invoices dated in the period, any status.
	ListInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.Invoice, error)

	// ListExpenses retrieves the user's expenses dated in the period.
	ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error)

	// ListSupplierInvoices retrieves the user's supplier invoices dated in the period, any payment status.
	ListSupplierInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.SupplierInvoice, error)
}
