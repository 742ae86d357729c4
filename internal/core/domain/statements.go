package domain

import "github.com/shopspring/decimal"

// AccountLine is a mapped account and its balance over the period.
type AccountLine struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// StatementGroup holds the accounts of one display category.
type StatementGroup struct {
	Category string          `json:"category"`
	Accounts []AccountLine   `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet reports assets against liabilities plus equity.
// Balanced is computed from the totals and never adjusted.
type BalanceSheet struct {
	Assets           []StatementGroup `json:"assets"`
	Liabilities      []StatementGroup `json:"liabilities"`
	Equity           []StatementGroup `json:"equity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
	TotalPassif      decimal.Decimal  `json:"totalPassif"`
	Balanced         bool             `json:"balanced"`
}

// IncomeStatement reports revenue and expense groups and the net result.
type IncomeStatement struct {
	RevenueItems  []StatementGroup `json:"revenueItems"`
	ExpenseItems  []StatementGroup `json:"expenseItems"`
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	NetIncome     decimal.Decimal  `json:"netIncome"`
}

// Totals are the scalar aggregates computed directly from the records.
type Totals struct {
	Revenue    decimal.Decimal `json:"revenue"`
	RevenueTTC decimal.Decimal `json:"revenueTTC"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetIncome  decimal.Decimal `json:"netIncome"`
	OutputVAT  decimal.Decimal `json:"outputVAT"`
	InputVAT   decimal.Decimal `json:"inputVAT"`
	VATPayable decimal.Decimal `json:"vatPayable"`
}

// PostingStats counts how the period's records were posted to the chart.
type PostingStats struct {
	Posted     int `json:"posted"`
	Unmapped   int `json:"unmapped"`
	Unbalanced int `json:"unbalanced"`
}

// StatementsReport is the full statement bundle for a user and period.
type StatementsReport struct {
	Period              Period          `json:"period"`
	BalanceSheet        BalanceSheet    `json:"balanceSheet"`
	IncomeStatement     IncomeStatement `json:"incomeStatement"`
	VATBreakdown        VATBreakdown    `json:"vatBreakdown"`
	TaxEstimate         TaxEstimate     `json:"taxEstimate"`
	Totals              Totals          `json:"totals"`
	Postings            PostingStats    `json:"postings"`
	NetIncomeConsistent bool            `json:"netIncomeConsistent"`
}
