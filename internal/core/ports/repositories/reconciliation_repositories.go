package repositories

import (
	"context"
	"time"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// ReconciliationReader reads both sides of a reconciliation run.
type ReconciliationReader interface {
	// ListUnmatchedTransactions retrieves up to limit incoming transactions not yet
	// linked to an invoice, newest first.
	ListUnmatchedTransactions(ctx context.Context, userID string, limit int) ([]domain.BankTransaction, error)

	// ListOpenInvoices retrieves invoices that are neither draft, paid nor cancelled.
	ListOpenInvoices(ctx context.Context, userID string) ([]domain.OpenInvoice, error)
}

// ReconciliationWriter persists matches.
type ReconciliationWriter interface {
	// CommitMatch links the transaction to the invoice and marks the invoice paid
	// in one unit of work. It fails with apperrors.ErrConflict when the transaction
	// was linked or the invoice settled in the meantime.
	CommitMatch(ctx context.Context, userID string, match domain.ReconciliationMatch, paidDate time.Time) error
}

// ReconciliationRepositoryFacade combines the reconciliation read and write operations.
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
