package services

import (
	"context"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// ReconciliationService matches unlinked bank transactions to open invoices.
type ReconciliationService interface {
	// Reconcile commits every match whose confidence reaches threshold (0..1).
	// Callers must not run two reconciliations for the same user at once.
	Reconcile(ctx context.Context, userID string, threshold float64) (*domain.ReconciliationResult, error)
}
