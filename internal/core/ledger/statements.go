package ledger

import (
	"sort"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Code and name of the synthetic equity line carrying the period result.
const (
	PeriodResultCode     = "current-period-result"
	PeriodResultName     = "Current period result"
	PeriodResultCategory = "Result"
)

// BuildStatements posts the records once and derives both statements from the balances.
func BuildStatements(m *AccountMapper, records domain.LedgerRecords, p domain.Period) (domain.BalanceSheet, domain.IncomeStatement, domain.PostingStats) {
	balances, stats := PostRecords(m, records, p)
	income := incomeStatementFrom(m, balances)
	return balanceSheetFrom(m, balances, income.NetIncome), income, stats
}

// BuildBalanceSheet groups asset, liability and equity balances of the period.
func BuildBalanceSheet(m *AccountMapper, records domain.LedgerRecords, p domain.Period) domain.BalanceSheet {
	bs, _, _ := BuildStatements(m, records, p)
	return bs
}

// BuildIncomeStatement groups revenue and expense balances of the period.
func BuildIncomeStatement(m *AccountMapper, records domain.LedgerRecords, p domain.Period) domain.IncomeStatement {
	balances, _ := PostRecords(m, records, p)
	return incomeStatementFrom(m, balances)
}

func incomeStatementFrom(m *AccountMapper, balances map[string]decimal.Decimal) domain.IncomeStatement {
	revenue, totalRevenue := groupByCategory(m, balances, domain.AccountRevenue)
	expenses, totalExpenses := groupByCategory(m, balances, domain.AccountExpense)
	return domain.IncomeStatement{
		RevenueItems:  revenue,
		ExpenseItems:  expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
	}
}

func balanceSheetFrom(m *AccountMapper, balances map[string]decimal.Decimal, netIncome decimal.Decimal) domain.BalanceSheet {
	assets, totalAssets := groupByCategory(m, balances, domain.AccountAsset)
	liabilities, totalLiabilities := groupByCategory(m, balances, domain.AccountLiability)
	equity, totalEquity := groupByCategory(m, balances, domain.AccountEquity)

	if !netIncome.IsZero() {
		equity = append(equity, domain.StatementGroup{
			Category: PeriodResultCategory,
			Accounts: []domain.AccountLine{{Code: PeriodResultCode, Name: PeriodResultName, Balance: netIncome}},
			Total:    netIncome,
		})
		totalEquity = totalEquity.Add(netIncome)
	}

	return NewBalanceSheet(assets, liabilities, equity, totalAssets, totalLiabilities, totalEquity)
}

// NewBalanceSheet fills the derived totals and the balance flag. The figures are never adjusted.
func NewBalanceSheet(assets, liabilities, equity []domain.StatementGroup, totalAssets, totalLiabilities, totalEquity decimal.Decimal) domain.BalanceSheet {
	totalPassif := totalLiabilities.Add(totalEquity)
	return domain.BalanceSheet{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		TotalPassif:      totalPassif,
		Balanced:         accounting.WithinTolerance(totalAssets, totalPassif),
	}
}

// groupByCategory collects the balances of one account type, one group per
// category sorted by name, accounts sorted by code. Balances are rounded per
// line and totals are summed from the rounded lines.
func groupByCategory(m *AccountMapper, balances map[string]decimal.Decimal, accountType domain.AccountType) ([]domain.StatementGroup, decimal.Decimal) {
	byCategory := make(map[string][]domain.AccountLine)
	for code, balance := range balances {
		acc, ok := m.Resolve(code)
		if !ok || acc.Type != accountType {
			continue
		}
		byCategory[acc.Category] = append(byCategory[acc.Category], domain.AccountLine{
			Code:    acc.Code,
			Name:    acc.Name,
			Balance: accounting.RoundMoney(balance),
		})
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	groups := make([]domain.StatementGroup, 0, len(categories))
	total := decimal.Zero
	for _, c := range categories {
		lines := byCategory[c]
		sort.Slice(lines, func(i, j int) bool { return lines[i].Code < lines[j].Code })
		groupTotal := decimal.Zero
		for _, l := range lines {
			groupTotal = groupTotal.Add(l.Balance)
		}
		groups = append(groups, domain.StatementGroup{Category: c, Accounts: lines, Total: groupTotal})
		total = total.Add(groupTotal)
	}
	return groups, total
}
