package gormstore

import (
	"context"
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
)

// SQLite keeps timestamps as text, so period bounds are applied after loading.

func (s *Store) ListInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.Invoice, error) {
	var rows []models.Invoice
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("invoice_date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	out := []domain.Invoice{}
	for _, m := range rows {
		if period.Contains(m.InvoiceDate) {
			out = append(out, mapping.ToDomainInvoice(m))
		}
	}
	return out, nil
}

func (s *Store) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	var rows []models.Expense
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("expense_date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	out := []domain.Expense{}
	for _, m := range rows {
		if period.Contains(m.ExpenseDate) {
			out = append(out, mapping.ToDomainExpense(m))
		}
	}
	return out, nil
}

func (s *Store) ListSupplierInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.SupplierInvoice, error) {
	var rows []models.SupplierInvoice
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("invoice_date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying supplier invoices: %w", err)
	}
	out := []domain.SupplierInvoice{}
	for _, m := range rows {
		if period.Contains(m.InvoiceDate) {
			out = append(out, mapping.ToDomainSupplierInvoice(m))
		}
	}
	return out, nil
}
