package domain

import "github.com/shopspring/decimal"

// TaxBracket is one slice of a progressive scale. Max nil means unbounded.
// Rate is a fraction: 0.11 taxes the slice at 11%.
type TaxBracket struct {
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max"`
	Rate decimal.Decimal  `json:"rate"`
}

// TaxRate is an entry of the VAT rate table. Rate is a percentage.
type TaxRate struct {
	Rate  decimal.Decimal `json:"rate"`
	Label string          `json:"label"`
}

// TaxBracketDetail is the tax computed on the slice of income inside one bracket.
type TaxBracketDetail struct {
	Min     decimal.Decimal  `json:"min"`
	Max     *decimal.Decimal `json:"max"`
	Rate    decimal.Decimal  `json:"rate"`
	Taxable decimal.Decimal  `json:"taxable"`
	Tax     decimal.Decimal  `json:"tax"`
}

// TaxEstimate is the progressive income tax estimate for a net income.
type TaxEstimate struct {
	NetIncome        decimal.Decimal    `json:"netIncome"`
	TotalTax         decimal.Decimal    `json:"totalTax"`
	EffectiveRate    decimal.Decimal    `json:"effectiveRate"`
	QuarterlyPayment decimal.Decimal    `json:"quarterlyPayment"`
	Details          []TaxBracketDetail `json:"details"`
}
