package ledger

import (
	"fmt"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var quarters = decimal.NewFromInt(4)

// ValidateBrackets checks the scale starts at zero, is contiguous and only the last bracket is open-ended.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: tax bracket table is empty", apperrors.ErrValidation)
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("%w: first tax bracket must start at 0, starts at %s", apperrors.ErrValidation, brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: bracket %d rate %s outside [0,1]", apperrors.ErrValidation, i, b.Rate)
		}
		last := i == len(brackets)-1
		if b.Max == nil {
			if !last {
				return fmt.Errorf("%w: only the last bracket may be unbounded (bracket %d)", apperrors.ErrValidation, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: last bracket must be unbounded", apperrors.ErrValidation)
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("%w: bracket %d max %s must exceed min %s", apperrors.ErrValidation, i, b.Max, b.Min)
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return fmt.Errorf("%w: bracket %d ends at %s but bracket %d starts at %s",
				apperrors.ErrValidation, i, b.Max, i+1, brackets[i+1].Min)
		}
	}
	return nil
}

// EstimateTax applies a progressive scale: each bracket taxes only the slice of
// income that falls inside it.
func EstimateTax(netIncome decimal.Decimal, brackets []domain.TaxBracket) (domain.TaxEstimate, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return domain.TaxEstimate{}, err
	}

	estimate := domain.TaxEstimate{
		NetIncome:        accounting.RoundMoney(netIncome),
		TotalTax:         decimal.Zero,
		EffectiveRate:    decimal.Zero,
		QuarterlyPayment: decimal.Zero,
		Details:          []domain.TaxBracketDetail{},
	}
	if !netIncome.IsPositive() {
		return estimate, nil
	}

	totalTax := decimal.Zero
	for _, b := range brackets {
		if !netIncome.GreaterThan(b.Min) {
			break
		}
		upper := netIncome
		if b.Max != nil && b.Max.LessThan(netIncome) {
			upper = *b.Max
		}
		taxable := upper.Sub(b.Min)
		tax := taxable.Mul(b.Rate)
		totalTax = totalTax.Add(tax)
		estimate.Details = append(estimate.Details, domain.TaxBracketDetail{
			Min:     b.Min,
			Max:     b.Max,
			Rate:    b.Rate,
			Taxable: accounting.RoundMoney(taxable),
			Tax:     accounting.RoundMoney(tax),
		})
	}

	estimate.TotalTax = accounting.RoundMoney(totalTax)
	estimate.EffectiveRate = totalTax.Div(netIncome).Round(4)
	estimate.QuarterlyPayment = accounting.RoundMoney(totalTax.Div(quarters))
	return estimate, nil
}
