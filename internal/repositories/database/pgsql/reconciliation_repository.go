package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReconciliationRepository reads reconciliation candidates and writes matches.
type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) *PgxReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReconciliationRepository implements portsrepo.ReconciliationRepositoryFacade
var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

// ListUnmatchedTransactions retrieves up to limit unlinked incoming transactions, newest first.
func (r *PgxReconciliationRepository) ListUnmatchedTransactions(ctx context.Context, userID string, limit int) ([]domain.BankTransaction, error) {
	query := `
		SELECT id, user_id, amount, transaction_date, reference, description, invoice_id
		FROM bank_transactions
		WHERE user_id = $1 AND invoice_id IS NULL AND amount > 0
		ORDER BY transaction_date DESC, id
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying unmatched transactions: %w", err)
	}
	defer rows.Close()

	result := []domain.BankTransaction{}
	for rows.Next() {
		var m models.BankTransaction
		if err := rows.Scan(&m.ID, &m.UserID, &m.Amount, &m.TransactionDate, &m.Reference, &m.Description, &m.InvoiceID); err != nil {
			return nil, fmt.Errorf("error scanning bank transaction row: %w", err)
		}
		result = append(result, mapping.ToDomainBankTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank transaction rows: %w", err)
	}
	return result, nil
}

// ListOpenInvoices retrieves invoices still awaiting payment.
func (r *PgxReconciliationRepository) ListOpenInvoices(ctx context.Context, userID string) ([]domain.OpenInvoice, error) {
	query := `
		SELECT id, invoice_number, client_name, total_ttc, invoice_date
		FROM invoices
		WHERE user_id = $1 AND status <> ALL($2)
		ORDER BY invoice_date, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, domain.ClosedInvoiceStatuses())
	if err != nil {
		return nil, fmt.Errorf("error querying open invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.OpenInvoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(&m.ID, &m.InvoiceNumber, &m.ClientName, &m.TotalTTC, &m.InvoiceDate); err != nil {
			return nil, fmt.Errorf("error scanning open invoice row: %w", err)
		}
		result = append(result, mapping.ToDomainOpenInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open invoice rows: %w", err)
	}
	return result, nil
}

// CommitMatch links the transaction and settles the invoice in one database
// transaction. Both updates are guarded so a concurrent run cannot link the
// same transaction or settle the same invoice twice.
func (r *PgxReconciliationRepository) CommitMatch(ctx context.Context, userID string, match domain.ReconciliationMatch, paidDate time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	tag, err := tx.Exec(ctx, `
		UPDATE bank_transactions
		SET invoice_id = $1, match_confidence = $2, reconciled_at = $3, updated_at = $3
		WHERE id = $4 AND user_id = $5 AND invoice_id IS NULL;
	`, match.InvoiceID, match.Confidence, now, match.TransactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to link transaction %s: %w", match.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrLinked(ctx, tx, userID, match.TransactionID)
	}

	tag, err = tx.Exec(ctx, `
		UPDATE invoices
		SET status = $1, paid_at = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5 AND status <> ALL($6);
	`, string(domain.InvoicePaid), paidDate, now, match.InvoiceID, userID, domain.ClosedInvoiceStatuses())
	if err != nil {
		return fmt.Errorf("failed to settle invoice %s: %w", match.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s is no longer open: %w", match.InvoiceID, apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

// missingOrLinked explains why the guarded link update touched no row.
func (r *PgxReconciliationRepository) missingOrLinked(ctx context.Context, tx pgx.Tx, userID, transactionID string) error {
	var linked *string
	err := tx.QueryRow(ctx, `SELECT invoice_id FROM bank_transactions WHERE id = $1 AND user_id = $2;`,
		transactionID, userID).Scan(&linked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	return fmt.Errorf("transaction %s is already linked: %w", transactionID, apperrors.ErrConflict)
}
