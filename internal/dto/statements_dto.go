package dto

import "github.com/djoufack/cashpilot/internal/core/domain"

// PeriodQuery carries the reporting period of a statements or declaration request.
// Both bounds are YYYY-MM-DD and inclusive.
type PeriodQuery struct {
	StartDate string `form:"startDate" example:"2024-01-01"`
	EndDate   string `form:"endDate" example:"2024-03-31"`
}

// Period parses the bounds into a validated domain period.
func (q PeriodQuery) Period() (domain.Period, error) {
	return domain.ParsePeriod(q.StartDate, q.EndDate)
}

// DeclarationQuery selects the period and the country form of a VAT declaration.
type DeclarationQuery struct {
	PeriodQuery
	Country string `form:"country" binding:"required,len=2,alpha" example:"FR"`
}

// StatementsResponse is the statements bundle returned to clients.
type StatementsResponse = domain.StatementsReport

// DeclarationResponse is the VAT return returned to clients.
type DeclarationResponse = domain.Declaration
