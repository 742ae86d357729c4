package declaration

import (
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CA3 line codes.
const (
	CA3Revenue           = "line01_ca_ht"
	CA3OutputVAT         = "line08_tva_collectee"
	CA3OutputVAT20       = "line08A_tva_20"
	CA3OutputVAT10       = "line08B_tva_10"
	CA3OutputVAT55       = "line09_tva_5_5"
	CA3DeductibleGoods   = "line19_tva_deductible_biens"
	CA3DeductibleService = "line20_tva_deductible_services"
	CA3TotalDeductible   = "line23_total_deductible"
	CA3NetVAT            = "line28_tva_nette"
)

var (
	rate20  = decimal.NewFromInt(20)
	rate10  = decimal.NewFromInt(10)
	rate5_5 = decimal.RequireFromString("5.5")
)

// CA3 is the French monthly/quarterly VAT return.
type CA3 struct{}

func (CA3) Country() string { return "FR" }
func (CA3) Name() string    { return "CA3" }

// Render fills the CA3 lines. The net line is negative when the period ends in a VAT credit.
func (f CA3) Render(in Input) domain.Declaration {
	collected, deductible, net := in.balances()
	b := in.Breakdown

	return domain.Declaration{
		Country: f.Country(),
		Format:  f.Name(),
		Period:  in.Period,
		Lines: []domain.DeclarationLine{
			{Code: CA3Revenue, Label: "Chiffre d'affaires HT", Amount: in.Totals.Revenue},
			{Code: CA3OutputVAT, Label: "TVA collectée", Amount: collected},
			{Code: CA3OutputVAT20, Label: "TVA à 20%", Amount: b.OutputAt(rate20)},
			{Code: CA3OutputVAT10, Label: "TVA à 10%", Amount: b.OutputAt(rate10)},
			{Code: CA3OutputVAT55, Label: "TVA à 5,5%", Amount: b.OutputAt(rate5_5)},
			{Code: CA3DeductibleGoods, Label: "TVA déductible sur biens", Amount: b.InputGoods},
			{Code: CA3DeductibleService, Label: "TVA déductible sur services", Amount: b.InputServices},
			{Code: CA3TotalDeductible, Label: "Total TVA déductible", Amount: deductible},
			{Code: CA3NetVAT, Label: "TVA nette due", Amount: net},
		},
		Summary: summary(collected, deductible, net, map[string]decimal.Decimal{
			"tva_collectee":  collected,
			"tva_deductible": deductible,
			"tva_nette":      net,
		}),
	}
}
