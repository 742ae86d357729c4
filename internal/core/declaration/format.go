// Package declaration renders VAT figures into country-specific return forms.
package declaration

import (
	"sort"
	"strings"

	"github.com/djoufack/cashpilot/internal/apperrors"
	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Input is what every form is rendered from.
type Input struct {
	Period    domain.Period
	Totals    domain.Totals
	Breakdown domain.VATBreakdown
}

// collected, deductible and net as carried by every form.
func (in Input) balances() (collected, deductible, net decimal.Decimal) {
	collected = in.Breakdown.TotalOutput()
	deductible = in.Breakdown.TotalInput()
	return collected, deductible, collected.Sub(deductible)
}

// Format is one country's VAT return layout.
type Format interface {
	// Country is the ISO 3166-1 alpha-2 code the format applies to.
	Country() string
	// Name identifies the form, e.g. "CA3".
	Name() string
	Render(in Input) domain.Declaration
}

// Registry maps country codes to formats. It is read-only after construction.
type Registry struct {
	formats map[string]Format
}

// NewRegistry registers formats by their upper-cased country. A later format
// replaces an earlier one for the same country.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{formats: make(map[string]Format, len(formats))}
	for _, f := range formats {
		r.formats[strings.ToUpper(f.Country())] = f
	}
	return r
}

// DefaultRegistry knows France (CA3) and Belgium (Intervat).
func DefaultRegistry() *Registry {
	return NewRegistry(CA3{}, Intervat{})
}

// Lookup returns the format for a country, case-insensitively. Unknown
// countries fail with *apperrors.UnsupportedCountryError.
func (r *Registry) Lookup(country string) (Format, error) {
	f, ok := r.formats[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return nil, &apperrors.UnsupportedCountryError{Country: country}
	}
	return f, nil
}

// Countries lists the registered country codes, sorted.
func (r *Registry) Countries() []string {
	out := make([]string, 0, len(r.formats))
	for c := range r.formats {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func summary(collected, deductible, net decimal.Decimal, localized map[string]decimal.Decimal) domain.DeclarationSummary {
	return domain.DeclarationSummary{
		Collected:  collected,
		Deductible: deductible,
		Net:        net,
		Localized:  localized,
	}
}
