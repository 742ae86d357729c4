package services

import (
	"context"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// StatementService builds the accounting statements of a period.
type StatementService interface {
	// BuildStatements returns the balance sheet, income statement, VAT breakdown,
	// tax estimate and scalar totals for the user's records in the period.
	BuildStatements(ctx context.Context, userID string, period domain.Period) (*domain.StatementsReport, error)
}

// DeclarationService renders VAT returns.
type DeclarationService interface {
	// GenerateVATDeclaration returns the country's VAT return for the period.
	// Countries without a form fail with apperrors.ErrUnsupportedCountry.
	GenerateVATDeclaration(ctx context.Context, userID string, period domain.Period, country string) (*domain.Declaration, error)
}
