package repositories

import (
	"context"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// ReferenceDataReader reads the per-user accounting reference data.
type ReferenceDataReader interface {
	// ListChartAccounts retrieves the user's chart of accounts.
	ListChartAccounts(ctx context.Context, userID string) ([]domain.ChartAccount, error)

	// ListAccountMappings retrieves the rules linking record kinds to chart accounts.
	ListAccountMappings(ctx context.Context, userID string) ([]domain.AccountMapping, error)

	// ListTaxBrackets retrieves the user's income tax scale ordered by lower bound.
	// An empty result means the built-in scale applies.
	ListTaxBrackets(ctx context.Context, userID string) ([]domain.TaxBracket, error)

	// ListTaxRates retrieves the VAT rate table in display order.
	// An empty result means the built-in table applies.
	ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error)
}
