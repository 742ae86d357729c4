package gormstore_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/repositories/database/gormstore"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "user-1"

func openStore(t *testing.T) *gormstore.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := gormstore.Open("file:"+name+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func q1(t *testing.T) domain.Period {
	p, err := domain.NewPeriod(day(2024, 1, 1), day(2024, 3, 31))
	require.NoError(t, err)
	return p
}

func TestListInvoices_FiltersUserAndPeriod(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	paid := day(2024, 2, 12)
	require.NoError(t, s.Seed(ctx,
		&[]models.Invoice{
			mapping.ToModelInvoice(domain.Invoice{
				ID: "inv-1", Number: "F-001", TotalHT: decimal.RequireFromString("833.33"),
				TotalTTC: decimal.RequireFromString("1000"), VATRate: decimal.NewFromInt(20),
				Status: domain.InvoicePaid, Date: day(2024, 2, 10), PaidDate: &paid,
			}, userID),
			mapping.ToModelInvoice(domain.Invoice{ID: "inv-2", Status: domain.InvoiceSent, Date: day(2024, 4, 2)}, userID),
			mapping.ToModelInvoice(domain.Invoice{ID: "inv-3", Status: domain.InvoiceSent, Date: day(2024, 1, 5)}, "someone-else"),
		},
	))

	invoices, err := s.ListInvoices(ctx, userID, q1(t))
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	inv := invoices[0]
	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, "F-001", inv.Number)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.True(t, inv.TotalHT.Equal(decimal.RequireFromString("833.33")), inv.TotalHT.String())
	assert.True(t, inv.TotalTTC.Equal(decimal.NewFromInt(1000)), inv.TotalTTC.String())
	require.NotNil(t, inv.PaidDate)
	assert.True(t, inv.PaidDate.Equal(paid))
}

func TestListExpensesAndSupplierInvoices(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx,
		&models.Expense{ID: "exp-1", UserID: userID, Amount: nd("100"), TaxAmount: nd("20"), ExpenseDate: day(2024, 3, 31)},
		&models.Expense{ID: "exp-2", UserID: userID, Amount: nd("50"), ExpenseDate: day(2023, 12, 31)},
		&models.SupplierInvoice{ID: "si-1", UserID: userID, TotalAmount: nd("400"), VATAmount: nd("80"),
			PaymentStatus: sql.NullString{String: "paid", Valid: true}, InvoiceDate: day(2024, 1, 1)},
	))

	expenses, err := s.ListExpenses(ctx, userID, q1(t))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "exp-1", expenses[0].ID)
	assert.True(t, expenses[0].VATAmount.Equal(decimal.NewFromInt(20)))
	assert.True(t, expenses[0].VATRate.IsZero())

	supplier, err := s.ListSupplierInvoices(ctx, userID, q1(t))
	require.NoError(t, err)
	require.Len(t, supplier, 1)
	assert.Equal(t, domain.PaymentPaid, supplier[0].PaymentStatus)
}

func TestReferenceData(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx,
		&[]models.ChartAccount{
			{UserID: userID, AccountCode: "706", AccountName: "Prestations", AccountType: "REVENUE"},
			{UserID: userID, AccountCode: "512", AccountName: "Banque", AccountType: "asset",
				AccountCategory: sql.NullString{String: "Treasury", Valid: true}},
		},
		&models.AccountMapping{ID: "m-1", UserID: userID, SourceType: "invoice", AmountAccountCode: "706",
			VATAccountCode: sql.NullString{String: "44571", Valid: true}},
		&[]models.TaxBracket{
			{ID: "b-2", UserID: userID, MinIncome: decimal.NewFromInt(10000), Rate: decimal.RequireFromString("0.2")},
			{ID: "b-1", UserID: userID, MinIncome: decimal.Zero, MaxIncome: nd("10000"), Rate: decimal.Zero},
		},
		&[]models.TaxRate{
			{ID: "r-2", UserID: userID, Rate: decimal.NewFromInt(10), Label: "Taux intermédiaire", Position: 2},
			{ID: "r-1", UserID: userID, Rate: decimal.NewFromInt(20), Label: "Taux normal", Position: 1},
		},
	))

	accounts, err := s.ListChartAccounts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "512", accounts[0].Code)
	assert.Equal(t, "Treasury", accounts[0].Category)
	assert.Equal(t, domain.AccountRevenue, accounts[1].Type)

	mappings, err := s.ListAccountMappings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, domain.KindInvoice, mappings[0].SourceKind)
	assert.Equal(t, "44571", mappings[0].VATAccount)
	assert.Empty(t, mappings[0].SettlementAccount)

	brackets, err := s.ListTaxBrackets(ctx, userID)
	require.NoError(t, err)
	require.Len(t, brackets, 2)
	assert.True(t, brackets[0].Min.IsZero())
	assert.Nil(t, brackets[1].Max)

	rates, err := s.ListTaxRates(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Taux normal", rates[0].Label)
}

func seedReconciliation(t *testing.T, s *gormstore.Store) {
	t.Helper()
	require.NoError(t, s.Seed(context.Background(),
		&[]models.BankTransaction{
			{ID: "tx-1", UserID: userID, Amount: decimal.NewFromInt(1000), TransactionDate: day(2024, 2, 15),
				Reference: sql.NullString{String: "VIR F-001", Valid: true}},
			{ID: "tx-2", UserID: userID, Amount: decimal.NewFromInt(-40), TransactionDate: day(2024, 2, 16)},
			{ID: "tx-3", UserID: userID, Amount: decimal.NewFromInt(12), TransactionDate: day(2024, 2, 1),
				InvoiceID: sql.NullString{String: "inv-0", Valid: true}},
		},
		&[]models.Invoice{
			{ID: "inv-1", UserID: userID, InvoiceNumber: sql.NullString{String: "F-001", Valid: true},
				TotalTTC: nd("1000"), Status: "sent", InvoiceDate: day(2024, 2, 1)},
			{ID: "inv-2", UserID: userID, TotalTTC: nd("500"), Status: "draft", InvoiceDate: day(2024, 2, 1)},
			{ID: "inv-3", UserID: userID, TotalTTC: nd("500"), Status: "paid", InvoiceDate: day(2024, 2, 1)},
		},
	))
}

func TestReconciliationReads(t *testing.T) {
	s := openStore(t)
	seedReconciliation(t, s)
	ctx := context.Background()

	txs, err := s.ListUnmatchedTransactions(ctx, userID, 100)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "tx-1", txs[0].ID)
	assert.Equal(t, "VIR F-001", txs[0].Reference)

	open, err := s.ListOpenInvoices(ctx, userID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "inv-1", open[0].ID)
	assert.True(t, open[0].Total.Equal(decimal.NewFromInt(1000)))
}

func TestCommitMatch(t *testing.T) {
	s := openStore(t)
	seedReconciliation(t, s)
	ctx := context.Background()
	paidDate := day(2024, 2, 20)
	match := domain.ReconciliationMatch{TransactionID: "tx-1", InvoiceID: "inv-1", InvoiceNumber: "F-001", Confidence: 1}

	require.NoError(t, s.CommitMatch(ctx, userID, match, paidDate))

	txs, err := s.ListUnmatchedTransactions(ctx, userID, 100)
	require.NoError(t, err)
	assert.Empty(t, txs)
	open, err := s.ListOpenInvoices(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, open)

	invoices, err := s.ListInvoices(ctx, userID, q1(t))
	require.NoError(t, err)
	for _, inv := range invoices {
		if inv.ID == "inv-1" {
			assert.Equal(t, domain.InvoicePaid, inv.Status)
			require.NotNil(t, inv.PaidDate)
			assert.True(t, inv.PaidDate.Equal(paidDate))
		}
	}

	t.Run("second commit conflicts", func(t *testing.T) {
		err := s.CommitMatch(ctx, userID, match, paidDate)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
	t.Run("unknown transaction", func(t *testing.T) {
		err := s.CommitMatch(ctx, userID, domain.ReconciliationMatch{TransactionID: "nope", InvoiceID: "inv-1"}, paidDate)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCommitMatch_ClosedInvoiceRollsBack(t *testing.T) {
	s := openStore(t)
	seedReconciliation(t, s)
	ctx := context.Background()

	err := s.CommitMatch(ctx, userID, domain.ReconciliationMatch{TransactionID: "tx-1", InvoiceID: "inv-2"}, day(2024, 2, 20))
	require.ErrorIs(t, err, apperrors.ErrConflict)

	txs, err := s.ListUnmatchedTransactions(ctx, userID, 100)
	require.NoError(t, err)
	require.Len(t, txs, 1, "transaction link must be rolled back")
}
