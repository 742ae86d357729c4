package reconciliation

import "github.com/djoufack/cashpilot/internal/core/domain"

// Greedy walks transactions in order and gives each the best invoice still
// available. On equal scores the invoice listed first wins. A committed
// invoice leaves the pool; one whose commit failed stays in it.
func Greedy(txs []domain.BankTransaction, invs []domain.OpenInvoice, threshold float64, commit CommitFunc) Outcome {
	out := Outcome{Matches: []domain.ReconciliationMatch{}}
	used := make([]bool, len(invs))

	for _, tx := range candidates(txs) {
		out.Scanned++

		best, bestScore := -1, 0
		for i, inv := range invs {
			if used[i] {
				continue
			}
			if s := Score(tx, inv); s > bestScore {
				best, bestScore = i, s
			}
		}
		if best < 0 || !Qualifies(bestScore, threshold) {
			continue
		}
		if out.commit(commit, tx, invs[best], bestScore) {
			used[best] = true
		}
	}
	return out
}
