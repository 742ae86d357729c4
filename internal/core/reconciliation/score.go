// Package reconciliation pairs incoming bank transactions with open invoices.
// Matchers are pure; persisting a match is delegated to a CommitFunc.
package reconciliation

import (
	"fmt"
	"math"
	"strings"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Score weights. Amount closeness takes the first matching tier only.
const (
	ScoreExactAmount   = 50
	ScoreAmountWithin1 = 40
	ScoreAmountWithin5 = 20
	ScoreNumberInText  = 30
	ScoreClientInText  = 20
	MaxScore           = 100
)

// DefaultThreshold is the confidence an automatic match needs when none is configured.
const DefaultThreshold = 0.8

var (
	one         = decimal.NewFromInt(1)
	onePercent  = decimal.RequireFromString("0.01")
	fivePercent = decimal.RequireFromString("0.05")
)

// thresholdEpsilon absorbs float noise so a score of 80 passes a 0.8 threshold.
const thresholdEpsilon = 1e-9

// Score rates how likely tx pays inv, from 0 to 100.
func Score(tx domain.BankTransaction, inv domain.OpenInvoice) int {
	score := amountScore(tx.Amount, inv.Total)

	text := strings.ToLower(tx.Reference + " " + tx.Description)
	if containsFold(text, inv.Number) {
		score += ScoreNumberInText
	}
	if containsFold(text, inv.ClientName) {
		score += ScoreClientInText
	}
	return score
}

func amountScore(paid, due decimal.Decimal) int {
	denominator := decimal.Max(paid.Abs(), due.Abs(), one)
	ratio := paid.Sub(due).Abs().Div(denominator)
	switch {
	case ratio.IsZero():
		return ScoreExactAmount
	case ratio.LessThan(onePercent):
		return ScoreAmountWithin1
	case ratio.LessThan(fivePercent):
		return ScoreAmountWithin5
	default:
		return 0
	}
}

// containsFold reports whether lowered text contains needle. Blank needles never match.
func containsFold(text, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	return needle != "" && strings.Contains(text, needle)
}

// Confidence converts a score to the 0..1 scale thresholds are expressed in.
func Confidence(score int) float64 {
	return float64(score) / MaxScore
}

// Qualifies reports whether a score is high enough to commit at threshold:
// confidence >= threshold, except that a zero score never qualifies, so a
// threshold of 0 still requires some evidence linking the pair.
func Qualifies(score int, threshold float64) bool {
	return score > 0 && Confidence(score) >= threshold-thresholdEpsilon
}

// ValidateThreshold rejects thresholds outside [0, 1].
func ValidateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return fmt.Errorf("%w: threshold %v must be between 0 and 1", apperrors.ErrValidation, threshold)
	}
	return nil
}
