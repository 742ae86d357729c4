package accounting

import (
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a posting amount based on account type and entry side.
// A positive result increases the account's natural balance.
func CalculateSignedAmount(p domain.Posting, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := p.Amount
	isDebit := p.Side == domain.Debit

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.AccountAsset, domain.AccountExpense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.AccountLiability, domain.AccountEquity, domain.AccountRevenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account %s", accountType, p.AccountCode)
	}
	return signedAmount, nil
}

// ValidatePostingsBalance checks that the postings of one record balance: total debits equal total credits.
func ValidatePostingsBalance(postings []domain.Posting) error {
	if len(postings) < 2 {
		return fmt.Errorf("a record must post at least two entries, got %d", len(postings))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, p := range postings {
		if p.Amount.IsNegative() {
			return fmt.Errorf("posting amount must not be negative for account %s", p.AccountCode)
		}
		if p.Side == domain.Debit {
			debits = debits.Add(p.Amount)
		} else {
			credits = credits.Add(p.Amount)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("postings do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
