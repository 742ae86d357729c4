package declaration

import (
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Intervat grid numbers.
const (
	GridRevenue    = "grid00"
	GridVATDue     = "grid54"
	GridDeductible = "grid59"
	GridPayable    = "grid71"
	GridCredit     = "grid72"
)

// Intervat is the Belgian periodic VAT return.
type Intervat struct{}

func (Intervat) Country() string { return "BE" }
func (Intervat) Name() string    { return "Intervat" }

// Render fills the Intervat grids. Exactly one of grid 71 and grid 72 is
// non-zero when the net is non-zero, and neither is ever negative.
func (f Intervat) Render(in Input) domain.Declaration {
	collected, deductible, net := in.balances()

	payable, credit := decimal.Zero, decimal.Zero
	switch {
	case net.IsPositive():
		payable = net
	case net.IsNegative():
		credit = net.Abs()
	}

	return domain.Declaration{
		Country: f.Country(),
		Format:  f.Name(),
		Period:  in.Period,
		Lines: []domain.DeclarationLine{
			{Code: GridRevenue, Label: "Chiffre d'affaires", Amount: in.Totals.Revenue},
			{Code: GridVATDue, Label: "TVA due", Amount: collected},
			{Code: GridDeductible, Label: "TVA déductible", Amount: deductible},
			{Code: GridPayable, Label: "Montant dû à l'État", Amount: payable},
			{Code: GridCredit, Label: "Crédit de TVA", Amount: credit},
		},
		Summary: summary(collected, deductible, net, map[string]decimal.Decimal{
			"tva_due":        collected,
			"tva_deductible": deductible,
			"solde_tva":      net,
		}),
	}
}
