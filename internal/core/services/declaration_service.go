package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/djoufack/cashpilot/internal/core/declaration"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/ledger"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
)

// declarationService implements the DeclarationService interface
type declarationService struct {
	BaseService
	ingestor *ledgerIngestor
	registry *declaration.Registry
}

// DeclarationServiceOption is a functional option for configuring the declaration service
type DeclarationServiceOption func(*declarationService)

// WithDeclarationRegistry replaces the built-in country formats.
func WithDeclarationRegistry(registry *declaration.Registry) DeclarationServiceOption {
	return func(s *declarationService) {
		s.registry = registry
	}
}

// NewDeclarationService creates a new declaration service with the provided options
func NewDeclarationService(ledgerRepo portsrepo.LedgerRecordReader, referenceRepo portsrepo.ReferenceDataReader, options ...DeclarationServiceOption) portssvc.DeclarationService {
	svc := &declarationService{
		ingestor: newLedgerIngestor(ledgerRepo, referenceRepo),
		registry: declaration.DefaultRegistry(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure declarationService implements the DeclarationService interface
var _ portssvc.DeclarationService = (*declarationService)(nil)

// GenerateVATDeclaration renders the country's VAT return. The period and the
// country are checked before anything is read.
func (s *declarationService) GenerateVATDeclaration(ctx context.Context, userID string, period domain.Period, country string) (*domain.Declaration, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	format, err := s.registry.Lookup(country)
	if err != nil {
		s.LogDebug(ctx, "VAT declaration requested for unsupported country",
			slog.String("user_id", userID),
			slog.String("country", country))
		return nil, err
	}

	in, err := s.ingestor.FetchVATInputs(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch VAT inputs",
			slog.String("user_id", userID),
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to fetch VAT inputs: %w", err)
	}

	decl := format.Render(declaration.Input{
		Period:    period,
		Totals:    ledger.Aggregate(in.Records, period),
		Breakdown: ledger.BuildVATBreakdown(in.Records, in.Rates, period),
	})

	s.LogInfo(ctx, "VAT declaration generated successfully",
		slog.String("user_id", userID),
		slog.String("format", decl.Format),
		slog.String("period", period.String()),
		slog.String("net", decl.Summary.Net.String()))
	return &decl, nil
}
