package pgsql

import (
	"context"
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository reads invoices, expenses and supplier invoices.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRecordReader
var _ portsrepo.LedgerRecordReader = (*PgxLedgerRepository)(nil)

// ListInvoices retrieves the user's invoices dated in the period, whatever their status.
func (r *PgxLedgerRepository) ListInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.Invoice, error) {
	query := `
		SELECT id, user_id, invoice_number, client_id, client_name, total_ht, total_ttc, tax_rate,
		       status, invoice_date, paid_at, created_at, updated_at
		FROM invoices
		WHERE user_id = $1 AND invoice_date BETWEEN $2 AND $3
		ORDER BY invoice_date, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.InvoiceNumber, &m.ClientID, &m.ClientName, &m.TotalHT, &m.TotalTTC, &m.TaxRate,
			&m.Status, &m.InvoiceDate, &m.PaidAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return result, nil
}

// ListExpenses retrieves the user's expenses dated in the period.
func (r *PgxLedgerRepository) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, tax_amount, tax_rate, category, expense_date
		FROM expenses
		WHERE user_id = $1 AND expense_date BETWEEN $2 AND $3
		ORDER BY expense_date, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	result := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ID, &m.UserID, &m.Amount, &m.TaxAmount, &m.TaxRate, &m.Category, &m.ExpenseDate); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		result = append(result, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return result, nil
}

// ListSupplierInvoices retrieves the user's supplier invoices dated in the period.
func (r *PgxLedgerRepository) ListSupplierInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.SupplierInvoice, error) {
	query := `
		SELECT id, user_id, total_amount, vat_amount, payment_status, invoice_date
		FROM supplier_invoices
		WHERE user_id = $1 AND invoice_date BETWEEN $2 AND $3
		ORDER BY invoice_date, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying supplier invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.SupplierInvoice{}
	for rows.Next() {
		var m models.SupplierInvoice
		if err := rows.Scan(&m.ID, &m.UserID, &m.TotalAmount, &m.VATAmount, &m.PaymentStatus, &m.InvoiceDate); err != nil {
			return nil, fmt.Errorf("error scanning supplier invoice row: %w", err)
		}
		result = append(result, mapping.ToDomainSupplierInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier invoice rows: %w", err)
	}
	return result, nil
}
