package pgsql

import (
	"context"
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads the chart of accounts, mapping rules and tax tables.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReferenceRepository implements portsrepo.ReferenceDataReader
var _ portsrepo.ReferenceDataReader = (*PgxReferenceRepository)(nil)

// ListChartAccounts retrieves the user's chart of accounts ordered by code.
func (r *PgxReferenceRepository) ListChartAccounts(ctx context.Context, userID string) ([]domain.ChartAccount, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT user_id, account_code, account_name, account_type, account_category
		FROM chart_of_accounts
		WHERE user_id = $1
		ORDER BY account_code;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying chart of accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartAccount])
	if err != nil {
		return nil, fmt.Errorf("error scanning chart of accounts: %w", err)
	}
	return mapping.ToDomainSlice(accounts, mapping.ToDomainChartAccount), nil
}

// ListAccountMappings retrieves the user's mapping rules.
func (r *PgxReferenceRepository) ListAccountMappings(ctx context.Context, userID string) ([]domain.AccountMapping, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, user_id, source_type, source_category, amount_account_code, vat_account_code, settlement_account_code
		FROM accounting_mappings
		WHERE user_id = $1
		ORDER BY source_type, source_category NULLS FIRST, id;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying accounting mappings: %w", err)
	}
	mappings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountMapping])
	if err != nil {
		return nil, fmt.Errorf("error scanning accounting mappings: %w", err)
	}
	return mapping.ToDomainSlice(mappings, mapping.ToDomainAccountMapping), nil
}

// ListTaxBrackets retrieves the user's income tax scale ordered by lower bound.
func (r *PgxReferenceRepository) ListTaxBrackets(ctx context.Context, userID string) ([]domain.TaxBracket, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, user_id, min_income, max_income, rate
		FROM tax_brackets
		WHERE user_id = $1
		ORDER BY min_income;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying tax brackets: %w", err)
	}
	brackets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaxBracket])
	if err != nil {
		return nil, fmt.Errorf("error scanning tax brackets: %w", err)
	}
	return mapping.ToDomainSlice(brackets, mapping.ToDomainTaxBracket), nil
}

// ListTaxRates retrieves the VAT rate table in display order.
func (r *PgxReferenceRepository) ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, user_id, rate, label, position
		FROM tax_rates
		WHERE user_id = $1
		ORDER BY position, rate DESC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying tax rates: %w", err)
	}
	rates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaxRate])
	if err != nil {
		return nil, fmt.Errorf("error scanning tax rates: %w", err)
	}
	return mapping.ToDomainSlice(rates, mapping.ToDomainTaxRate), nil
}
