package services

import (
	"context"
	"fmt"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/core/ledger"
	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// statementInputs is everything one statements run reads.
type statementInputs struct {
	Records  domain.LedgerRecords
	Accounts []domain.ChartAccount
	Mappings []domain.AccountMapping
	Brackets []domain.TaxBracket
	Rates    []domain.TaxRate
}

// vatInputs is everything one declaration run reads.
type vatInputs struct {
	Records domain.LedgerRecords
	Rates   []domain.TaxRate
}

// ledgerIngestor issues the independent reads of a run concurrently. The first
// failure cancels the others and fails the whole fetch; nothing partial is returned.
type ledgerIngestor struct {
	ledgerRepo    portsrepo.LedgerRecordReader
	referenceRepo portsrepo.ReferenceDataReader
}

func newLedgerIngestor(ledgerRepo portsrepo.LedgerRecordReader, referenceRepo portsrepo.ReferenceDataReader) *ledgerIngestor {
	return &ledgerIngestor{ledgerRepo: ledgerRepo, referenceRepo: referenceRepo}
}

func (i *ledgerIngestor) fetchRecords(ctx context.Context, g *errgroup.Group, userID string, p domain.Period, out *domain.LedgerRecords) {
	g.Go(func() error {
		invoices, err := i.ledgerRepo.ListInvoices(ctx, userID, p)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		out.Invoices = invoices
		return nil
	})
	g.Go(func() error {
		expenses, err := i.ledgerRepo.ListExpenses(ctx, userID, p)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		out.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		supplierInvoices, err := i.ledgerRepo.ListSupplierInvoices(ctx, userID, p)
		if err != nil {
			return fmt.Errorf("failed to list supplier invoices: %w", err)
		}
		out.SupplierInvoices = supplierInvoices
		return nil
	})
}

func (i *ledgerIngestor) fetchRates(ctx context.Context, g *errgroup.Group, userID string, out *[]domain.TaxRate) {
	g.Go(func() error {
		rates, err := i.referenceRepo.ListTaxRates(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list tax rates: %w", err)
		}
		if len(rates) == 0 {
			rates = ledger.DefaultTaxRates()
		}
		*out = rates
		return nil
	})
}

// FetchStatementInputs reads the records and all reference data for a statements run.
func (i *ledgerIngestor) FetchStatementInputs(ctx context.Context, userID string, p domain.Period) (*statementInputs, error) {
	in := &statementInputs{}
	g, gctx := errgroup.WithContext(ctx)

	i.fetchRecords(gctx, g, userID, p, &in.Records)
	i.fetchRates(gctx, g, userID, &in.Rates)
	g.Go(func() error {
		accounts, err := i.referenceRepo.ListChartAccounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list chart accounts: %w", err)
		}
		in.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		mappings, err := i.referenceRepo.ListAccountMappings(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list account mappings: %w", err)
		}
		in.Mappings = mappings
		return nil
	})
	g.Go(func() error {
		brackets, err := i.referenceRepo.ListTaxBrackets(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list tax brackets: %w", err)
		}
		if len(brackets) == 0 {
			brackets = ledger.DefaultTaxBrackets()
		}
		in.Brackets = brackets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// FetchVATInputs reads the records and the VAT rate table for a declaration run.
func (i *ledgerIngestor) FetchVATInputs(ctx context.Context, userID string, p domain.Period) (*vatInputs, error) {
	in := &vatInputs{}
	g, gctx := errgroup.WithContext(ctx)

	i.fetchRecords(gctx, g, userID, p, &in.Records)
	i.fetchRates(gctx, g, userID, &in.Rates)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}
