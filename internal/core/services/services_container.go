package services

import (
	"log/slog"

	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/core/reconciliation"
	"github.com/djoufack/cashpilot/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	matcher, err := reconciliation.ParseStrategy(cfg.ReconcileStrategy)
	if err != nil {
		slog.Warn("Unknown reconciliation strategy, falling back to greedy",
			slog.String("strategy", cfg.ReconcileStrategy))
		matcher = reconciliation.Greedy
	}

	return &portssvc.ServiceContainer{
		Statements:   NewStatementService(repos.LedgerRepo, repos.ReferenceRepo),
		Declarations: NewDeclarationService(repos.LedgerRepo, repos.ReferenceRepo),
		Reconciliation: NewReconciliationService(
			repos.ReconciliationRepo,
			WithMatcher(matcher),
			WithFetchLimit(cfg.ReconcileFetchLimit),
		),
	}
}
