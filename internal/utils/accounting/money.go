package accounting

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places of returned money amounts.
const MoneyPlaces int32 = 2

// BalanceTolerance is the largest difference still considered balanced: one cent.
var BalanceTolerance = decimal.New(1, -MoneyPlaces)

// RoundMoney rounds an amount for presentation. Only call it on returned totals,
// never between additions.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// WithinTolerance reports whether |a - b| is strictly below one cent.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}

// Sum adds amounts without intermediate rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
