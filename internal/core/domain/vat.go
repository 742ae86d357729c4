package domain

import "github.com/shopspring/decimal"

// VATBucket is the output VAT collected at one rate.
type VATBucket struct {
	Rate  decimal.Decimal `json:"rate"`
	Label string          `json:"label"`
	Base  decimal.Decimal `json:"base"`
	VAT   decimal.Decimal `json:"vat"`
}

// VATBreakdown splits output VAT by rate and input VAT into goods and services.
type VATBreakdown struct {
	OutputByRate  []VATBucket     `json:"outputByRate"`
	InputGoods    decimal.Decimal `json:"inputGoods"`
	InputServices decimal.Decimal `json:"inputServices"`
	NetVAT        decimal.Decimal `json:"netVAT"`
}

// TotalOutput sums the VAT of every rate bucket.
func (b VATBreakdown) TotalOutput() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range b.OutputByRate {
		total = total.Add(bucket.VAT)
	}
	return total
}

// TotalInput sums deductible VAT on goods and services.
func (b VATBreakdown) TotalInput() decimal.Decimal {
	return b.InputGoods.Add(b.InputServices)
}

// OutputAt returns the VAT collected at rate, zero when no bucket exists.
func (b VATBreakdown) OutputAt(rate decimal.Decimal) decimal.Decimal {
	for _, bucket := range b.OutputByRate {
		if bucket.Rate.Equal(rate) {
			return bucket.VAT
		}
	}
	return decimal.Zero
}
