package ledger

import (
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PostingsFor expands a record into debit/credit legs following its rule.
// Legs whose account is left empty in the rule are dropped.
func PostingsFor(rule domain.AccountMapping, rec domain.LedgerRecord) []domain.Posting {
	var legs []domain.Posting
	add := func(code string, side domain.EntrySide, amount decimal.Decimal) {
		if code == "" || amount.IsZero() {
			return
		}
		if amount.IsNegative() {
			// credit notes and refunds flip the side rather than carry a negative amount
			amount = amount.Neg()
			if side == domain.Debit {
				side = domain.Credit
			} else {
				side = domain.Debit
			}
		}
		legs = append(legs, domain.Posting{
			AccountCode: code,
			Side:        side,
			Amount:      amount,
			Source:      rec.Kind(),
			RecordID:    rec.RecordID(),
		})
	}

	switch r := rec.(type) {
	case domain.Invoice:
		add(rule.SettlementAccount, domain.Debit, r.TotalTTC)
		add(rule.AmountAccount, domain.Credit, r.TotalHT)
		add(rule.VATAccount, domain.Credit, r.VATAmount())
	case domain.Expense:
		add(rule.AmountAccount, domain.Debit, r.Amount)
		add(rule.VATAccount, domain.Debit, r.VATAmount)
		add(rule.SettlementAccount, domain.Credit, r.Amount.Add(r.VATAmount))
	case domain.SupplierInvoice:
		add(rule.AmountAccount, domain.Debit, r.Amount)
		add(rule.VATAccount, domain.Debit, r.VATAmount)
		add(rule.SettlementAccount, domain.Credit, r.Amount.Add(r.VATAmount))
	}
	return legs
}

// PostRecords posts every recognized record of the period and returns the
// signed balance of each touched account.
func PostRecords(m *AccountMapper, records domain.LedgerRecords, p domain.Period) (map[string]decimal.Decimal, domain.PostingStats) {
	balances := make(map[string]decimal.Decimal)
	var stats domain.PostingStats

	for _, rec := range records.All() {
		if !domain.Recognized(rec, p) {
			continue
		}
		rule, ok := m.RuleFor(rec)
		if !ok {
			stats.Unmapped++
			continue
		}
		legs := PostingsFor(rule, rec)
		if len(legs) > 0 && accounting.ValidatePostingsBalance(legs) != nil {
			stats.Unbalanced++
		}
		for _, leg := range legs {
			acc, ok := m.Resolve(leg.AccountCode)
			if !ok {
				continue
			}
			signed, err := accounting.CalculateSignedAmount(leg, acc.Type)
			if err != nil {
				continue
			}
			balances[leg.AccountCode] = balances[leg.AccountCode].Add(signed)
		}
		stats.Posted++
	}
	return balances, stats
}
