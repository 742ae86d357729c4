package ledger_test

import (
	"testing"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/ledger"
	"github.com/djoufack/cashpilot/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedRecords() domain.LedgerRecords {
	return domain.LedgerRecords{
		Invoices: []domain.Invoice{
			paidInvoice("1", "833.33", "1000.00", "20", "2024-02-10"),
		},
		Expenses: []domain.Expense{
			{ID: "e1", Amount: dec("200"), VATAmount: dec("40"), VATRate: dec("20"), Category: "rent", Date: day("2024-01-20")},
		},
		SupplierInvoices: []domain.SupplierInvoice{
			{ID: "s1", Amount: dec("100"), VATAmount: dec("20"), PaymentStatus: domain.PaymentPaid, Date: day("2024-03-31")},
		},
	}
}

func findLine(groups []domain.StatementGroup, code string) (domain.AccountLine, bool) {
	for _, g := range groups {
		for _, a := range g.Accounts {
			if a.Code == code {
				return a, true
			}
		}
	}
	return domain.AccountLine{}, false
}

func TestBuildStatements_SinglePaidInvoice(t *testing.T) {
	m := newMapper(t)
	records := domain.LedgerRecords{Invoices: []domain.Invoice{paidInvoice("1", "833.33", "1000.00", "20", "2024-02-10")}}

	bs, is, stats := ledger.BuildStatements(m, records, q1(t))

	assert.Equal(t, domain.PostingStats{Posted: 1}, stats)
	assert.True(t, is.TotalRevenue.Equal(dec("833.33")))
	assert.True(t, is.NetIncome.Equal(dec("833.33")))

	assert.True(t, bs.TotalAssets.Equal(dec("1000")))
	assert.True(t, bs.TotalLiabilities.Equal(dec("166.67")))
	assert.True(t, bs.TotalPassif.Equal(dec("1000")))
	assert.True(t, bs.Balanced)

	result, ok := findLine(bs.Equity, ledger.PeriodResultCode)
	require.True(t, ok)
	assert.True(t, result.Balance.Equal(dec("833.33")))
}

func TestBuildStatements_MixedRecordsBalance(t *testing.T) {
	m := newMapper(t)

	bs, is, stats := ledger.BuildStatements(m, mixedRecords(), q1(t))

	assert.Equal(t, 3, stats.Posted)
	assert.Zero(t, stats.Unbalanced)
	assert.True(t, bs.TotalAssets.Equal(dec("820")), "assets %s", bs.TotalAssets)
	assert.True(t, bs.TotalLiabilities.Equal(dec("286.67")), "liabilities %s", bs.TotalLiabilities)
	assert.True(t, is.NetIncome.Equal(dec("533.33")), "net income %s", is.NetIncome)
	assert.True(t, bs.Balanced)
	assert.True(t, accounting.WithinTolerance(bs.TotalAssets, bs.TotalLiabilities.Add(bs.TotalEquity)))

	// groups sorted by category, accounts by code
	require.Len(t, bs.Assets, 2)
	assert.Equal(t, "Tax", bs.Assets[0].Category)
	assert.Equal(t, "Treasury", bs.Assets[1].Category)
	require.Len(t, bs.Liabilities, 2)
	assert.Equal(t, "Payables", bs.Liabilities[0].Category)

	bank, _ := findLine(bs.Assets, "512")
	assert.True(t, bank.Balance.Equal(dec("760")))
	_, unused := findLine(bs.Equity, "101")
	assert.False(t, unused)
}

func TestBuildStatements_IncomeIdentityMatchesAggregate(t *testing.T) {
	m := newMapper(t)
	records := mixedRecords()
	p := q1(t)

	is := ledger.BuildIncomeStatement(m, records, p)
	totals := ledger.Aggregate(records, p)

	assert.True(t, is.NetIncome.Equal(is.TotalRevenue.Sub(is.TotalExpenses)))
	assert.True(t, is.NetIncome.Equal(totals.NetIncome))
	assert.True(t, is.TotalRevenue.Equal(totals.Revenue))
	assert.True(t, is.TotalExpenses.Equal(totals.Expenses))
}

func TestBuildStatements_ImbalanceIsReportedNotForced(t *testing.T) {
	mappings := []domain.AccountMapping{
		{SourceKind: domain.KindInvoice, AmountAccount: "706", VATAccount: "44571"},
	}
	m, err := ledger.NewAccountMapper(frenchChart(), mappings)
	require.NoError(t, err)
	records := domain.LedgerRecords{Invoices: []domain.Invoice{paidInvoice("1", "833.33", "1000.00", "20", "2024-02-10")}}

	bs, _, stats := ledger.BuildStatements(m, records, q1(t))

	assert.Equal(t, 1, stats.Unbalanced)
	assert.False(t, bs.Balanced)
	assert.True(t, bs.TotalAssets.IsZero())
	assert.True(t, bs.TotalPassif.Equal(dec("1000")))
}

func TestBuildStatements_SkipsUnrecognizedAndUnmapped(t *testing.T) {
	m, err := ledger.NewAccountMapper(frenchChart(), frenchMappings()[:1])
	require.NoError(t, err)

	draft := paidInvoice("2", "100", "120", "20", "2024-02-01")
	draft.Status = domain.InvoiceSent
	records := mixedRecords()
	records.Invoices = append(records.Invoices,
		draft,
		paidInvoice("3", "500", "600", "20", "2024-04-01"),
	)

	bs, is, stats := ledger.BuildStatements(m, records, q1(t))

	assert.Equal(t, domain.PostingStats{Posted: 1, Unmapped: 2}, stats)
	assert.True(t, is.TotalExpenses.IsZero())
	assert.True(t, is.NetIncome.Equal(dec("833.33")))
	assert.True(t, bs.Balanced)
	assert.False(t, is.NetIncome.Equal(ledger.Aggregate(records, q1(t)).NetIncome))
}

func TestBuildBalanceSheet_EmptyPeriod(t *testing.T) {
	bs := ledger.BuildBalanceSheet(newMapper(t), domain.LedgerRecords{}, q1(t))

	assert.Empty(t, bs.Assets)
	assert.Empty(t, bs.Equity)
	assert.True(t, bs.TotalAssets.IsZero())
	assert.True(t, bs.Balanced)
}

func TestNewBalanceSheet_Tolerance(t *testing.T) {
	tests := []struct {
		name        string
		assets      string
		liabilities string
		equity      string
		balanced    bool
	}{
		{name: "equal totals", assets: "5000", liabilities: "2000", equity: "3000", balanced: true},
		{name: "under one cent", assets: "5000.009", liabilities: "2000", equity: "3000", balanced: true},
		{name: "exactly one cent", assets: "5000.01", liabilities: "2000", equity: "3000", balanced: false},
		{name: "passif above assets", assets: "5000", liabilities: "2000", equity: "3000.01", balanced: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := ledger.NewBalanceSheet(nil, nil, nil, dec(tt.assets), dec(tt.liabilities), dec(tt.equity))

			assert.True(t, bs.TotalPassif.Equal(dec(tt.liabilities).Add(dec(tt.equity))))
			assert.True(t, bs.TotalAssets.Equal(dec(tt.assets)), "figures are never adjusted")
			assert.Equal(t, tt.balanced, bs.Balanced)
		})
	}
}
