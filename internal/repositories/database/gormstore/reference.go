package gormstore

import (
	"context"
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
	"github.com/djoufack/cashpilot/internal/utils/mapping"
)

func (s *Store) ListChartAccounts(ctx context.Context, userID string) ([]domain.ChartAccount, error) {
	var rows []models.ChartAccount
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("account_code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying chart of accounts: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainChartAccount), nil
}

func (s *Store) ListAccountMappings(ctx context.Context, userID string) ([]domain.AccountMapping, error) {
	var rows []models.AccountMapping
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("source_type, source_category, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying accounting mappings: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainAccountMapping), nil
}

func (s *Store) ListTaxBrackets(ctx context.Context, userID string) ([]domain.TaxBracket, error) {
	var rows []models.TaxBracket
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("min_income").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying tax brackets: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainTaxBracket), nil
}

func (s *Store) ListTaxRates(ctx context.Context, userID string) ([]domain.TaxRate, error) {
	var rows []models.TaxRate
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("position, rate DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error querying tax rates: %w", err)
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainTaxRate), nil
}
