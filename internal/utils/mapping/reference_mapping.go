package mapping

import (
	"strings"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/models"
)

// ToDomainChartAccount converts a model ChartAccount to a domain ChartAccount.
// Account types are stored in any case; the domain uses lower case.
func ToDomainChartAccount(m models.ChartAccount) domain.ChartAccount {
	return domain.ChartAccount{
		Code:     strings.TrimSpace(m.AccountCode),
		Name:     m.AccountName,
		Type:     domain.AccountType(strings.ToLower(strings.TrimSpace(m.AccountType))),
		Category: stringOrEmpty(m.AccountCategory),
	}
}

// ToDomainAccountMapping converts a model AccountMapping to a domain AccountMapping
func ToDomainAccountMapping(m models.AccountMapping) domain.AccountMapping {
	return domain.AccountMapping{
		SourceKind:        domain.RecordKind(strings.ToLower(strings.TrimSpace(m.SourceType))),
		Category:          stringOrEmpty(m.SourceCategory),
		AmountAccount:     strings.TrimSpace(m.AmountAccountCode),
		VATAccount:        stringOrEmpty(m.VATAccountCode),
		SettlementAccount: stringOrEmpty(m.SettlementAccountCode),
	}
}

// ToDomainTaxBracket converts a model TaxBracket to a domain TaxBracket
func ToDomainTaxBracket(m models.TaxBracket) domain.TaxBracket {
	b := domain.TaxBracket{Min: m.MinIncome, Rate: m.Rate}
	if m.MaxIncome.Valid {
		upper := m.MaxIncome.Decimal
		b.Max = &upper
	}
	return b
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{Rate: m.Rate, Label: m.Label}
}
