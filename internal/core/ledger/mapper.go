// Package ledger turns fetched record sets into aggregates and statements.
// Everything here is pure: no I/O, no logging, no shared state.
package ledger

import (
	"fmt"
	"strings"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
)

type ruleKey struct {
	kind     domain.RecordKind
	category string
}

// AccountMapper resolves account codes to their type and category and picks
// the mapping rule for each record.
type AccountMapper struct {
	accounts map[string]domain.ChartAccount
	mapped   map[string]bool
	rules    map[ruleKey]domain.AccountMapping
}

// NewAccountMapper validates the chart and the mapping rules against each other.
func NewAccountMapper(accounts []domain.ChartAccount, mappings []domain.AccountMapping) (*AccountMapper, error) {
	m := &AccountMapper{
		accounts: make(map[string]domain.ChartAccount, len(accounts)),
		mapped:   make(map[string]bool),
		rules:    make(map[ruleKey]domain.AccountMapping, len(mappings)),
	}

	for _, acc := range accounts {
		if !acc.Type.IsValid() {
			return nil, fmt.Errorf("%w: account %s has unknown type %q", apperrors.ErrValidation, acc.Code, acc.Type)
		}
		if existing, ok := m.accounts[acc.Code]; ok {
			if existing.Type != acc.Type {
				return nil, fmt.Errorf("%w: account %s resolves to both %s and %s",
					apperrors.ErrValidation, acc.Code, existing.Type, acc.Type)
			}
			continue
		}
		m.accounts[acc.Code] = acc
	}

	for _, rule := range mappings {
		if !rule.SourceKind.IsValid() {
			return nil, fmt.Errorf("%w: mapping has unknown source kind %q", apperrors.ErrValidation, rule.SourceKind)
		}
		if rule.AmountAccount == "" {
			return nil, fmt.Errorf("%w: mapping for %s has no amount account", apperrors.ErrValidation, rule.SourceKind)
		}
		for _, code := range rule.Codes() {
			if _, ok := m.accounts[code]; !ok {
				return nil, fmt.Errorf("%w: mapping for %s references unknown account %s",
					apperrors.ErrValidation, rule.SourceKind, code)
			}
			m.mapped[code] = true
		}
		key := ruleKey{kind: rule.SourceKind, category: normalizeCategory(rule.Category)}
		if _, dup := m.rules[key]; dup {
			return nil, fmt.Errorf("%w: duplicate mapping for %s/%q", apperrors.ErrValidation, rule.SourceKind, rule.Category)
		}
		m.rules[key] = rule
	}

	return m, nil
}

// Resolve returns the chart account for a code, only if some mapping references it.
func (m *AccountMapper) Resolve(code string) (domain.ChartAccount, bool) {
	if !m.mapped[code] {
		return domain.ChartAccount{}, false
	}
	acc, ok := m.accounts[code]
	return acc, ok
}

// IsMapped reports whether some mapping rule references the code.
func (m *AccountMapper) IsMapped(code string) bool {
	return m.mapped[code]
}

// Lookup returns the code -> account view of every mapped account.
func (m *AccountMapper) Lookup() map[string]domain.ChartAccount {
	out := make(map[string]domain.ChartAccount, len(m.mapped))
	for code := range m.mapped {
		out[code] = m.accounts[code]
	}
	return out
}

// RuleFor picks the category-specific rule for a record, falling back to the kind-wide rule.
func (m *AccountMapper) RuleFor(rec domain.LedgerRecord) (domain.AccountMapping, bool) {
	if exp, ok := rec.(domain.Expense); ok && exp.Category != "" {
		if rule, ok := m.rules[ruleKey{kind: domain.KindExpense, category: normalizeCategory(exp.Category)}]; ok {
			return rule, true
		}
	}
	rule, ok := m.rules[ruleKey{kind: rec.Kind()}]
	return rule, ok
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
