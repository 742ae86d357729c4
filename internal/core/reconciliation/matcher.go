package reconciliation

import (
	"fmt"
	"strings"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
)

// CommitFunc persists one match. An error leaves the pair unmatched.
type CommitFunc func(tx domain.BankTransaction, inv domain.OpenInvoice, confidence float64) error

// Outcome is what a matcher did with one batch.
type Outcome struct {
	Matches []domain.ReconciliationMatch
	// Scanned counts candidate transactions examined.
	Scanned int
	// Failed counts qualifying pairs whose commit returned an error.
	Failed int
	// Errors holds the commit errors in the order they happened.
	Errors []error
}

// Matcher assigns transactions to invoices and commits the qualifying pairs.
// Implementations never use a transaction or an invoice twice.
type Matcher func(txs []domain.BankTransaction, invs []domain.OpenInvoice, threshold float64, commit CommitFunc) Outcome

// Strategy names accepted by ParseStrategy.
const (
	StrategyGreedy  = "greedy"
	StrategyOptimal = "optimal"
)

// ParseStrategy returns the matcher for a configured strategy name. Empty means greedy.
func ParseStrategy(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyGreedy:
		return Greedy, nil
	case StrategyOptimal:
		return Optimal, nil
	default:
		return nil, fmt.Errorf("%w: unknown reconciliation strategy %q", apperrors.ErrValidation, name)
	}
}

func candidates(txs []domain.BankTransaction) []domain.BankTransaction {
	out := make([]domain.BankTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsCandidate() {
			out = append(out, tx)
		}
	}
	return out
}

func (o *Outcome) commit(commit CommitFunc, tx domain.BankTransaction, inv domain.OpenInvoice, score int) bool {
	confidence := Confidence(score)
	if err := commit(tx, inv, confidence); err != nil {
		o.Failed++
		o.Errors = append(o.Errors, fmt.Errorf("transaction %s -> invoice %s: %w", tx.ID, inv.ID, err))
		return false
	}
	o.Matches = append(o.Matches, domain.ReconciliationMatch{
		TransactionID: tx.ID,
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number,
		Confidence:    confidence,
	})
	return true
}
