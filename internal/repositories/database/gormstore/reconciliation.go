package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
	"gorm.io/gorm"
)

func (s *Store) ListUnmatchedTransactions(ctx context.Context, userID string, limit int) ([]domain.BankTransaction, error) {
	var rows []models.BankTransaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND invoice_id IS NULL AND amount > 0", userID).
		Order("transaction_date DESC, id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error querying unmatched transactions: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainBankTransaction), nil
}

func (s *Store) ListOpenInvoices(ctx context.Context, userID string) ([]domain.OpenInvoice, error) {
	var rows []models.Invoice
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status NOT IN ?", userID, domain.ClosedInvoiceStatuses()).
		Order("invoice_date, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error querying open invoices: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainOpenInvoice), nil
}

// CommitMatch links the transaction and settles the invoice atomically.
func (s *Store) CommitMatch(ctx context.Context, userID string, match domain.ReconciliationMatch, paidDate time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bt models.BankTransaction
		if err := tx.Where("id = ? AND user_id = ?", match.TransactionID, userID).First(&bt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("transaction %s: %w", match.TransactionID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load transaction %s: %w", match.TransactionID, err)
		}

		now := time.Now().UTC()
		res := tx.Model(&models.BankTransaction{}).
			Where("id = ? AND user_id = ? AND invoice_id IS NULL", match.TransactionID, userID).
			Updates(map[string]any{
				"invoice_id":       match.InvoiceID,
				"match_confidence": match.Confidence,
				"reconciled_at":    now,
				"updated_at":       now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to link transaction %s: %w", match.TransactionID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("transaction %s is already linked: %w", match.TransactionID, apperrors.ErrConflict)
		}

		res = tx.Model(&models.Invoice{}).
			Where("id = ? AND user_id = ? AND status NOT IN ?", match.InvoiceID, userID, domain.ClosedInvoiceStatuses()).
			Updates(map[string]any{
				"status":     string(domain.InvoicePaid),
				"paid_at":    paidDate,
				"updated_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to settle invoice %s: %w", match.InvoiceID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("invoice %s is no longer open: %w", match.InvoiceID, apperrors.ErrConflict)
		}
		return nil
	})
}
