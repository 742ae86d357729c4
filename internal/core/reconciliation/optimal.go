package reconciliation

import (
	"math"

	"github.com/djoufack/cashpilot/internal/core/domain"
)

// Optimal picks the assignment that maximises the total score of qualifying
// pairs (Hungarian method), then commits the pairs in transaction order.
// Unlike Greedy, an early transaction cannot take an invoice a later one
// needs more.
func Optimal(txs []domain.BankTransaction, invs []domain.OpenInvoice, threshold float64, commit CommitFunc) Outcome {
	out := Outcome{Matches: []domain.ReconciliationMatch{}}
	txs = candidates(txs)
	out.Scanned = len(txs)
	if len(txs) == 0 || len(invs) == 0 {
		return out
	}

	weights := make([][]int, len(txs))
	for i, tx := range txs {
		weights[i] = make([]int, len(invs))
		for j, inv := range invs {
			if s := Score(tx, inv); Qualifies(s, threshold) {
				weights[i][j] = s
			}
		}
	}

	assignment := maxWeightAssignment(weights)
	for i, j := range assignment {
		if j < 0 || weights[i][j] == 0 {
			continue
		}
		out.commit(commit, txs[i], invs[j], weights[i][j])
	}
	return out
}

// maxWeightAssignment returns, for each row, the column assigned to it (or -1)
// such that the sum of weights is maximal. Weights must be non-negative.
func maxWeightAssignment(weights [][]int) []int {
	rows := len(weights)
	cols := 0
	if rows > 0 {
		cols = len(weights[0])
	}
	n := rows
	if cols > n {
		n = cols
	}

	maxW := 0
	for _, row := range weights {
		for _, w := range row {
			if w > maxW {
				maxW = w
			}
		}
	}
	// square cost matrix, 1-indexed; padding cells cost as much as a zero-weight pair
	cost := make([][]int, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = make([]int, n+1)
		for j := 1; j <= n; j++ {
			w := 0
			if i <= rows && j <= cols {
				w = weights[i-1][j-1]
			}
			cost[i][j] = maxW - w
		}
	}

	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1) // p[j]: row matched to column j
	way := make([]int, n+1)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int, n+1)
		usedCol := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.MaxInt
		}
		for {
			usedCol[j0] = true
			i0, delta, j1 := p[j0], math.MaxInt, 0
			for j := 1; j <= n; j++ {
				if usedCol[j] {
					continue
				}
				cur := cost[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if usedCol[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, rows)
	for i := range assignment {
		assignment[i] = -1
	}
	for j := 1; j <= n; j++ {
		if i := p[j]; i >= 1 && i <= rows && j <= cols {
			assignment[i-1] = j - 1
		}
	}
	return assignment
}
