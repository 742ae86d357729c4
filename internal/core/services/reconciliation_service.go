package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/djoufack/cashpilot/internal/core/domain"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/core/reconciliation"
	"golang.org/x/sync/errgroup"
)

// DefaultReconcileFetchLimit caps how many unmatched transactions one run examines.
const DefaultReconcileFetchLimit = 100

// reconciliationService implements the ReconciliationService interface
type reconciliationService struct {
	BaseService
	repo       portsrepo.ReconciliationRepositoryFacade
	match      reconciliation.Matcher
	fetchLimit int
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*reconciliationService)

// WithMatcher selects the matching strategy. The default is reconciliation.Greedy.
func WithMatcher(m reconciliation.Matcher) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		if m != nil {
			s.match = m
		}
	}
}

// WithFetchLimit sets how many unmatched transactions a run loads. Non-positive values are ignored.
func WithFetchLimit(limit int) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		if limit > 0 {
			s.fetchLimit = limit
		}
	}
}

// NewReconciliationService creates a new reconciliation service with the provided options
func NewReconciliationService(repo portsrepo.ReconciliationRepositoryFacade, options ...ReconciliationServiceOption) portssvc.ReconciliationService {
	svc := &reconciliationService{
		repo:       repo,
		match:      reconciliation.Greedy,
		fetchLimit: DefaultReconcileFetchLimit,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reconciliationService implements the ReconciliationService interface
var _ portssvc.ReconciliationService = (*reconciliationService)(nil)

// Reconcile loads both sides, runs the matcher and commits each qualifying pair
// one at a time. A failed commit is logged and counted; the run carries on.
func (s *reconciliationService) Reconcile(ctx context.Context, userID string, threshold float64) (*domain.ReconciliationResult, error) {
	if err := reconciliation.ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	var (
		txs  []domain.BankTransaction
		invs []domain.OpenInvoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if txs, err = s.repo.ListUnmatchedTransactions(gctx, userID, s.fetchLimit); err != nil {
			return fmt.Errorf("failed to list unmatched transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if invs, err = s.repo.ListOpenInvoices(gctx, userID); err != nil {
			return fmt.Errorf("failed to list open invoices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load reconciliation candidates", slog.String("user_id", userID))
		return nil, err
	}

	// A matched invoice is paid on the day the money arrived.
	commit := func(tx domain.BankTransaction, inv domain.OpenInvoice, confidence float64) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.repo.CommitMatch(ctx, userID, domain.ReconciliationMatch{
			TransactionID: tx.ID,
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.Number,
			Confidence:    confidence,
		}, tx.Date)
	}

	out := s.match(txs, invs, threshold, commit)
	for _, err := range out.Errors {
		s.LogError(ctx, err, "Failed to commit reconciliation match", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "Reconciliation completed",
		slog.String("user_id", userID),
		slog.Int("scanned", out.Scanned),
		slog.Int("matched", len(out.Matches)),
		slog.Int("failed", out.Failed),
		slog.Int("open_invoices", len(invs)))

	return &domain.ReconciliationResult{
		Matched: len(out.Matches),
		Scanned: out.Scanned,
		Failed:  out.Failed,
		Details: out.Matches,
	}, nil
}
