package ledger_test

import (
	"testing"
	"time"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func q1(t *testing.T) domain.Period {
	t.Helper()
	p, err := domain.ParsePeriod("2024-01-01", "2024-03-31")
	require.NoError(t, err)
	return p
}

func frenchChart() []domain.ChartAccount {
	return []domain.ChartAccount{
		{Code: "512", Name: "Banque", Type: domain.AccountAsset, Category: "Treasury"},
		{Code: "44566", Name: "TVA deductible", Type: domain.AccountAsset, Category: "Tax"},
		{Code: "401", Name: "Fournisseurs", Type: domain.AccountLiability, Category: "Payables"},
		{Code: "44571", Name: "TVA collectee", Type: domain.AccountLiability, Category: "Tax"},
		{Code: "706", Name: "Prestations de services", Type: domain.AccountRevenue, Category: "Sales"},
		{Code: "606", Name: "Achats non stockes", Type: domain.AccountExpense, Category: "Purchases"},
		{Code: "613", Name: "Locations", Type: domain.AccountExpense, Category: "Services"},
		{Code: "101", Name: "Capital", Type: domain.AccountEquity, Category: "Capital"},
	}
}

func frenchMappings() []domain.AccountMapping {
	return []domain.AccountMapping{
		{SourceKind: domain.KindInvoice, AmountAccount: "706", VATAccount: "44571", SettlementAccount: "512"},
		{SourceKind: domain.KindExpense, AmountAccount: "613", VATAccount: "44566", SettlementAccount: "512"},
		{SourceKind: domain.KindExpense, Category: "Supplies", AmountAccount: "606", VATAccount: "44566", SettlementAccount: "512"},
		{SourceKind: domain.KindSupplierInvoice, AmountAccount: "613", VATAccount: "44566", SettlementAccount: "401"},
	}
}

func newMapper(t *testing.T) *ledger.AccountMapper {
	t.Helper()
	m, err := ledger.NewAccountMapper(frenchChart(), frenchMappings())
	require.NoError(t, err)
	return m
}

func paidInvoice(id, ht, ttc, rate, date string) domain.Invoice {
	return domain.Invoice{
		ID:         id,
		Number:     "INV-" + id,
		ClientName: "Client " + id,
		TotalHT:    dec(ht),
		TotalTTC:   dec(ttc),
		VATRate:    dec(rate),
		Status:     domain.InvoicePaid,
		Date:       day(date),
	}
}
