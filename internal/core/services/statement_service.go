package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/ledger"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
)

// statementService implements the StatementService interface
type statementService struct {
	BaseService
	ingestor *ledgerIngestor
}

// NewStatementService creates a new statement service reading from the given repositories
func NewStatementService(ledgerRepo portsrepo.LedgerRecordReader, referenceRepo portsrepo.ReferenceDataReader) portssvc.StatementService {
	return &statementService{
		ingestor: newLedgerIngestor(ledgerRepo, referenceRepo),
	}
}

// Ensure statementService implements the StatementService interface
var _ portssvc.StatementService = (*statementService)(nil)

// BuildStatements fetches the period's records and reference data, then derives every statement from them.
func (s *statementService) BuildStatements(ctx context.Context, userID string, period domain.Period) (*domain.StatementsReport, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	in, err := s.ingestor.FetchStatementInputs(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch statement inputs",
			slog.String("user_id", userID),
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to fetch statement inputs: %w", err)
	}

	mapper, err := ledger.NewAccountMapper(in.Accounts, in.Mappings)
	if err != nil {
		s.LogError(ctx, err, "Chart of accounts is inconsistent", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to build account mapper: %w", err)
	}

	balanceSheet, incomeStatement, stats := ledger.BuildStatements(mapper, in.Records, period)
	totals := ledger.Aggregate(in.Records, period)

	consistent := incomeStatement.NetIncome.Equal(totals.NetIncome)
	if !consistent {
		s.LogWarn(ctx, "Income statement net income disagrees with record totals",
			slog.String("user_id", userID),
			slog.String("statement_net_income", incomeStatement.NetIncome.String()),
			slog.String("aggregate_net_income", totals.NetIncome.String()),
			slog.Int("unmapped_records", stats.Unmapped))
	}
	if !balanceSheet.Balanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("user_id", userID),
			slog.String("total_assets", balanceSheet.TotalAssets.String()),
			slog.String("total_passif", balanceSheet.TotalPassif.String()),
			slog.Int("unbalanced_records", stats.Unbalanced))
	}

	estimate, err := ledger.EstimateTax(totals.NetIncome, in.Brackets)
	if err != nil {
		s.LogError(ctx, err, "Tax bracket table is invalid", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to estimate tax: %w", err)
	}

	report := &domain.StatementsReport{
		Period:              period,
		BalanceSheet:        balanceSheet,
		IncomeStatement:     incomeStatement,
		VATBreakdown:        ledger.BuildVATBreakdown(in.Records, in.Rates, period),
		TaxEstimate:         estimate,
		Totals:              totals,
		Postings:            stats,
		NetIncomeConsistent: consistent,
	}

	s.LogInfo(ctx, "Statements built successfully",
		slog.String("user_id", userID),
		slog.String("period", period.String()),
		slog.Int("posted_records", stats.Posted),
		slog.Bool("balanced", balanceSheet.Balanced))
	return report, nil
}
