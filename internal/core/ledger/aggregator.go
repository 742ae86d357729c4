package ledger

import (
	"sort"
	"strings"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/djoufack/cashpilot/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// goodsCategories are the expense categories whose VAT is deductible as goods.
// Everything else, supplier invoices included, is services.
var goodsCategories = map[string]bool{
	"equipment": true,
	"supplies":  true,
	"inventory": true,
}

// IsGoodsCategory reports whether an expense category is on the goods allowlist.
func IsGoodsCategory(category string) bool {
	return goodsCategories[strings.ToLower(strings.TrimSpace(category))]
}

// Revenue is the pre-tax total of paid invoices dated in the period.
func Revenue(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	return accounting.RoundMoney(sumRevenue(invoices, p))
}

// RevenueTTC is the tax-inclusive total of paid invoices dated in the period.
func RevenueTTC(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	return accounting.RoundMoney(sumRevenueTTC(invoices, p))
}

// Expenses totals expenses and paid supplier invoices dated in the period, VAT excluded.
func Expenses(expenses []domain.Expense, supplierInvoices []domain.SupplierInvoice, p domain.Period) decimal.Decimal {
	return accounting.RoundMoney(sumExpenses(expenses, supplierInvoices, p))
}

// OutputVAT is the VAT collected on paid invoices dated in the period.
func OutputVAT(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	return accounting.RoundMoney(sumOutputVAT(invoices, p))
}

// InputVAT is the deductible VAT on expenses and paid supplier invoices dated in the period.
func InputVAT(expenses []domain.Expense, supplierInvoices []domain.SupplierInvoice, p domain.Period) decimal.Decimal {
	return accounting.RoundMoney(sumInputVAT(expenses, supplierInvoices, p))
}

// Aggregate computes every scalar over the records. Sums stay unrounded until the end.
func Aggregate(records domain.LedgerRecords, p domain.Period) domain.Totals {
	revenue := sumRevenue(records.Invoices, p)
	expenses := sumExpenses(records.Expenses, records.SupplierInvoices, p)
	outputVAT := sumOutputVAT(records.Invoices, p)
	inputVAT := sumInputVAT(records.Expenses, records.SupplierInvoices, p)

	return domain.Totals{
		Revenue:    accounting.RoundMoney(revenue),
		RevenueTTC: accounting.RoundMoney(sumRevenueTTC(records.Invoices, p)),
		Expenses:   accounting.RoundMoney(expenses),
		NetIncome:  accounting.RoundMoney(revenue.Sub(expenses)),
		OutputVAT:  accounting.RoundMoney(outputVAT),
		InputVAT:   accounting.RoundMoney(inputVAT),
		VATPayable: accounting.RoundMoney(outputVAT.Sub(inputVAT)),
	}
}

// BuildVATBreakdown buckets output VAT by invoice rate and splits input VAT into
// goods and services. Buckets follow the order of the rate table, unknown rates
// come after it, highest first.
func BuildVATBreakdown(records domain.LedgerRecords, rates []domain.TaxRate, p domain.Period) domain.VATBreakdown {
	type bucket struct {
		rate      decimal.Decimal
		base, vat decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, inv := range records.Invoices {
		if !domain.Recognized(inv, p) {
			continue
		}
		key := inv.VATRate.String()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{rate: inv.VATRate}
			buckets[key] = b
		}
		b.base = b.base.Add(inv.TotalHT)
		b.vat = b.vat.Add(inv.VATAmount())
	}

	var goods, services decimal.Decimal
	for _, exp := range records.Expenses {
		if !domain.Recognized(exp, p) {
			continue
		}
		if IsGoodsCategory(exp.Category) {
			goods = goods.Add(exp.VATAmount)
		} else {
			services = services.Add(exp.VATAmount)
		}
	}
	for _, si := range records.SupplierInvoices {
		if domain.Recognized(si, p) {
			services = services.Add(si.VATAmount)
		}
	}

	labels := make(map[string]string, len(rates))
	order := make(map[string]int, len(rates))
	for i, r := range rates {
		key := r.Rate.String()
		if _, seen := order[key]; !seen {
			order[key] = i
			labels[key] = r.Label
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iKnown := order[keys[i]]
		oj, jKnown := order[keys[j]]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		default:
			return buckets[keys[i]].rate.GreaterThan(buckets[keys[j]].rate)
		}
	})

	breakdown := domain.VATBreakdown{
		OutputByRate:  make([]domain.VATBucket, 0, len(keys)),
		InputGoods:    accounting.RoundMoney(goods),
		InputServices: accounting.RoundMoney(services),
	}
	for _, k := range keys {
		b := buckets[k]
		label := labels[k]
		if label == "" {
			label = k + "%"
		}
		breakdown.OutputByRate = append(breakdown.OutputByRate, domain.VATBucket{
			Rate:  b.rate,
			Label: label,
			Base:  accounting.RoundMoney(b.base),
			VAT:   accounting.RoundMoney(b.vat),
		})
	}
	// net derives from the rounded parts so the identity holds on what is returned
	breakdown.NetVAT = breakdown.TotalOutput().Sub(breakdown.TotalInput())
	return breakdown
}

func sumRevenue(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if domain.Recognized(inv, p) {
			total = total.Add(inv.TotalHT)
		}
	}
	return total
}

func sumRevenueTTC(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if domain.Recognized(inv, p) {
			total = total.Add(inv.TotalTTC)
		}
	}
	return total
}

func sumOutputVAT(invoices []domain.Invoice, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if domain.Recognized(inv, p) {
			total = total.Add(inv.VATAmount())
		}
	}
	return total
}

func sumExpenses(expenses []domain.Expense, supplierInvoices []domain.SupplierInvoice, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if domain.Recognized(exp, p) {
			total = total.Add(exp.Amount)
		}
	}
	for _, si := range supplierInvoices {
		if domain.Recognized(si, p) {
			total = total.Add(si.Amount)
		}
	}
	return total
}

func sumInputVAT(expenses []domain.Expense, supplierInvoices []domain.SupplierInvoice, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if domain.Recognized(exp, p) {
			total = total.Add(exp.VATAmount)
		}
	}
	for _, si := range supplierInvoices {
		if domain.Recognized(si, p) {
			total = total.Add(si.VATAmount)
		}
	}
	return total
}
