package reconciliation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/reconciliation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tx(id, amount, reference string) domain.BankTransaction {
	return domain.BankTransaction{ID: id, Amount: dec(amount), Reference: reference, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
}

func inv(id, number, client, total string) domain.OpenInvoice {
	return domain.OpenInvoice{ID: id, Number: number, ClientName: client, Total: dec(total)}
}

type recorder struct {
	commits []string
	failOn  map[string]error
}

func (r *recorder) commit(t domain.BankTransaction, i domain.OpenInvoice, _ float64) error {
	if err := r.failOn[t.ID]; err != nil {
		return err
	}
	r.commits = append(r.commits, t.ID+"->"+i.ID)
	return nil
}

func strategies() map[string]reconciliation.Matcher {
	return map[string]reconciliation.Matcher{
		reconciliation.StrategyGreedy:  reconciliation.Greedy,
		reconciliation.StrategyOptimal: reconciliation.Optimal,
	}
}

func TestScore(t *testing.T) {
	invoice := inv("i1", "INV-2024-001", "Dupont SARL", "1200")
	tests := []struct {
		name string
		tx   domain.BankTransaction
		want int
	}{
		{"exact amount and number", tx("t", "1200", "VIR INV-2024-001"), 80},
		{"exact amount, number and client", tx("t", "1200", "vir inv-2024-001 DUPONT sarl"), 100},
		{"within one percent", tx("t", "1195", ""), 40},
		{"within five percent", tx("t", "1150", ""), 20},
		{"five percent is too far", tx("t", "1140", ""), 0},
		{"client only", tx("t", "10", "Dupont SARL"), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconciliation.Score(tt.tx, invoice))
		})
	}

	blank := inv("i2", "", " ", "1200")
	assert.Equal(t, 50, reconciliation.Score(tx("t", "1200", "anything"), blank))
}

func TestScore_FivePercentBoundary(t *testing.T) {
	// |950 - 1000| / 1000 = 0.05, not strictly below
	assert.Equal(t, 0, reconciliation.Score(tx("t", "950", ""), inv("i", "INV-9", "Acme", "1000")))
}

func TestMatchers_ExactAmountAndReferenceCommits(t *testing.T) {
	for name, match := range strategies() {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			out := match(
				[]domain.BankTransaction{tx("t1", "1200", "VIR INV-2024-001")},
				[]domain.OpenInvoice{inv("i1", "INV-2024-001", "Dupont SARL", "1200")},
				0.8, rec.commit)

			require.Len(t, out.Matches, 1)
			assert.Equal(t, "i1", out.Matches[0].InvoiceID)
			assert.Equal(t, "INV-2024-001", out.Matches[0].InvoiceNumber)
			assert.InDelta(t, 0.8, out.Matches[0].Confidence, 1e-9)
			assert.Equal(t, 1, out.Scanned)
			assert.Equal(t, []string{"t1->i1"}, rec.commits)
		})
	}
}

func TestMatchers_DistantAmountNeverCommits(t *testing.T) {
	for name, match := range strategies() {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			out := match(
				[]domain.BankTransaction{tx("t1", "950", "")},
				[]domain.OpenInvoice{inv("i1", "INV-1", "Acme", "1000")},
				0, rec.commit)

			assert.Empty(t, out.Matches)
			assert.Empty(t, rec.commits)
			assert.Equal(t, 1, out.Scanned)
		})
	}
}

func TestMatchers_NoInvoiceUsedTwice(t *testing.T) {
	txs := []domain.BankTransaction{
		tx("t1", "500", "INV-1"),
		tx("t2", "500", "INV-1"),
		tx("t3", "500", "INV-1"),
	}
	invs := []domain.OpenInvoice{inv("i1", "INV-1", "Acme", "500")}

	for name, match := range strategies() {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			out := match(txs, invs, 0.5, rec.commit)

			require.Len(t, out.Matches, 1)
			assert.Equal(t, 3, out.Scanned)
			seenTx := map[string]bool{}
			seenInv := map[string]bool{}
			for _, m := range out.Matches {
				assert.False(t, seenTx[m.TransactionID])
				assert.False(t, seenInv[m.InvoiceID])
				seenTx[m.TransactionID], seenInv[m.InvoiceID] = true, true
			}
		})
	}
}

func TestMatchers_SkipNonCandidates(t *testing.T) {
	linked := "i0"
	already := tx("t1", "500", "INV-1")
	already.InvoiceID = &linked
	outgoing := tx("t2", "-500", "INV-1")

	for name, match := range strategies() {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			out := match([]domain.BankTransaction{already, outgoing},
				[]domain.OpenInvoice{inv("i1", "INV-1", "Acme", "500")}, 0.5, rec.commit)

			assert.Zero(t, out.Scanned)
			assert.Empty(t, rec.commits)
		})
	}
}

func TestGreedy_FirstInvoiceWinsTies(t *testing.T) {
	rec := &recorder{}
	out := reconciliation.Greedy(
		[]domain.BankTransaction{tx("t1", "300", "")},
		[]domain.OpenInvoice{inv("a", "INV-A", "Acme", "300"), inv("b", "INV-B", "Bolt", "300")},
		0.5, rec.commit)

	require.Len(t, out.Matches, 1)
	assert.Equal(t, "a", out.Matches[0].InvoiceID)
}

func TestGreedy_FailedCommitReturnsInvoiceToPool(t *testing.T) {
	rec := &recorder{failOn: map[string]error{"t1": errors.New("connection reset")}}
	out := reconciliation.Greedy(
		[]domain.BankTransaction{tx("t1", "700", "INV-7"), tx("t2", "700", "INV-7")},
		[]domain.OpenInvoice{inv("i7", "INV-7", "Acme", "700")},
		0.8, rec.commit)

	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0].Error(), "connection reset")
	require.Len(t, out.Matches, 1)
	assert.Equal(t, "t2", out.Matches[0].TransactionID)
	assert.Equal(t, 2, out.Scanned)
}

func TestOptimal_BeatsGreedyOnContestedInvoice(t *testing.T) {
	txs := []domain.BankTransaction{
		tx("t1", "1000", "payment"),
		tx("t2", "990", "INV-A acme"),
	}
	invs := []domain.OpenInvoice{
		inv("a", "INV-A", "Acme", "1000"),
		inv("b", "INV-B", "Bolt", "1000"),
	}

	greedy := reconciliation.Greedy(txs, invs, 0.5, (&recorder{}).commit)
	optimal := reconciliation.Optimal(txs, invs, 0.5, (&recorder{}).commit)

	assert.Len(t, greedy.Matches, 1)
	require.Len(t, optimal.Matches, 2)
	byTx := map[string]string{}
	for _, m := range optimal.Matches {
		byTx[m.TransactionID] = m.InvoiceID
	}
	assert.Equal(t, "b", byTx["t1"])
	assert.Equal(t, "a", byTx["t2"])
}

func TestMatchers_ThresholdGateAndMonotonicity(t *testing.T) {
	// independent pairs scoring 100, 80, 50, 40 and 20
	txs := []domain.BankTransaction{
		tx("t1", "100", "INV-1 acme"),
		tx("t2", "200", "INV-2"),
		tx("t3", "300", ""),
		tx("t4", "399", ""),
		tx("t5", "510", ""),
	}
	invs := []domain.OpenInvoice{
		inv("i1", "INV-1", "Acme", "100"),
		inv("i2", "INV-2", "Bolt", "200"),
		inv("i3", "INV-3", "Cora", "300"),
		inv("i4", "INV-4", "Dune", "400"),
		inv("i5", "INV-5", "Echo", "500"),
	}

	for name, match := range strategies() {
		t.Run(name, func(t *testing.T) {
			previous := len(txs) + 1
			for _, threshold := range []float64{0, 0.2, 0.4, 0.5, 0.8, 1} {
				out := match(txs, invs, threshold, (&recorder{}).commit)
				for _, m := range out.Matches {
					assert.GreaterOrEqual(t, m.Confidence, threshold-1e-9)
				}
				assert.LessOrEqual(t, len(out.Matches), previous, "threshold %v", threshold)
				previous = len(out.Matches)
			}
			assert.Equal(t, 1, previous)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"", "greedy", "Optimal"} {
		m, err := reconciliation.ParseStrategy(name)
		require.NoError(t, err)
		assert.NotNil(t, m)
	}
	_, err := reconciliation.ParseStrategy("random")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateThreshold(t *testing.T) {
	assert.NoError(t, reconciliation.ValidateThreshold(0))
	assert.NoError(t, reconciliation.ValidateThreshold(reconciliation.DefaultThreshold))
	assert.NoError(t, reconciliation.ValidateThreshold(1))
	assert.ErrorIs(t, reconciliation.ValidateThreshold(-0.1), apperrors.ErrValidation)
	assert.ErrorIs(t, reconciliation.ValidateThreshold(1.5), apperrors.ErrValidation)
}

func TestQualifies(t *testing.T) {
	assert.True(t, reconciliation.Qualifies(80, 0.8))
	assert.False(t, reconciliation.Qualifies(70, 0.8))
	assert.True(t, reconciliation.Qualifies(20, 0))
	assert.False(t, reconciliation.Qualifies(0, 0), "a zero score needs some evidence even at threshold 0")
}
