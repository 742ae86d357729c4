package domain

import "github.com/shopspring/decimal"

// DeclarationLine is one numbered box of a VAT return.
type DeclarationLine struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// DeclarationSummary exposes collected/deductible/net under raw keys and under
// the keys used by the country's form.
type DeclarationSummary struct {
	Collected  decimal.Decimal            `json:"collected"`
	Deductible decimal.Decimal            `json:"deductible"`
	Net        decimal.Decimal            `json:"net"`
	Localized  map[string]decimal.Decimal `json:"localized"`
}

// Declaration is a country-specific VAT return for a period.
type Declaration struct {
	Country string             `json:"country"`
	Format  string             `json:"format"`
	Period  Period             `json:"period"`
	Lines   []DeclarationLine  `json:"lines"`
	Summary DeclarationSummary `json:"summary"`
}

// Line returns the amount of the box with the given code.
func (d Declaration) Line(code string) (decimal.Decimal, bool) {
	for _, l := range d.Lines {
		if l.Code == code {
			return l.Amount, true
		}
	}
	return decimal.Zero, false
}
