package services_test

import (
	"context"
	"time"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRecordReader ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockLedgerRepository) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerRepository) ListSupplierInvoices(ctx context.Context, userID string, period domain.Period) ([]domain.SupplierInvoice, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierInvoice), args.Error(1)
}

// --- Mock ReferenceDataReader ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListChartAccounts(ctx context.Context, userID string) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}

func (m *MockReferenceRepository) ListAccountMappings(ctx context.Context, userID string) ([]domain.AccountMapping, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMapping), args.Error(1)
}

func (m *MockReferenceRepository) ListTaxBrackets(ctx context.Context, userID string) ([]domain.TaxBracket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxBracket), args.Error(1)
}

func (m *MockReferenceRepository) ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

// --- Mock ReconciliationRepositoryFacade ---
type MockReconciliationRepository struct {
	mock.Mock
}

func (m *MockReconciliationRepository) ListUnmatchedTransactions(ctx context.Context, userID string, limit int) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

func (m *MockReconciliationRepository) ListOpenInvoices(ctx context.Context, userID string) ([]domain.OpenInvoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenInvoice), args.Error(1)
}

func (m *MockReconciliationRepository) CommitMatch(ctx context.Context, userID string, match domain.ReconciliationMatch, paidDate time.Time) error {
	args := m.Called(ctx, userID, match, paidDate)
	return args.Error(0)
}
