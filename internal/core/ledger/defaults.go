package ledger

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/djoufack/cashpilot/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type referenceFile struct {
	TaxBrackets []struct {
		Min  string  `yaml:"min"`
		Max  *string `yaml:"max"`
		Rate string  `yaml:"rate"`
	} `yaml:"tax_brackets"`
	TaxRates []struct {
		Rate  string `yaml:"rate"`
		Label string `yaml:"label"`
	} `yaml:"tax_rates"`
}

var (
	loadDefaults    sync.Once
	defaultBrackets []domain.TaxBracket
	defaultRates    []domain.TaxRate
	defaultsErr     error
)

// ParseReferenceData decodes a YAML document of tax brackets and VAT rates.
func ParseReferenceData(data []byte) ([]domain.TaxBracket, []domain.TaxRate, error) {
	var f referenceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("decoding reference data: %w", err)
	}

	brackets := make([]domain.TaxBracket, 0, len(f.TaxBrackets))
	for i, b := range f.TaxBrackets {
		lower, err := decimal.NewFromString(b.Min)
		if err != nil {
			return nil, nil, fmt.Errorf("tax bracket %d min: %w", i, err)
		}
		rate, err := decimal.NewFromString(b.Rate)
		if err != nil {
			return nil, nil, fmt.Errorf("tax bracket %d rate: %w", i, err)
		}
		bracket := domain.TaxBracket{Min: lower, Rate: rate}
		if b.Max != nil {
			upper, err := decimal.NewFromString(*b.Max)
			if err != nil {
				return nil, nil, fmt.Errorf("tax bracket %d max: %w", i, err)
			}
			bracket.Max = &upper
		}
		brackets = append(brackets, bracket)
	}
	if err := ValidateBrackets(brackets); err != nil {
		return nil, nil, err
	}

	rates := make([]domain.TaxRate, 0, len(f.TaxRates))
	for i, r := range f.TaxRates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, nil, fmt.Errorf("tax rate %d: %w", i, err)
		}
		rates = append(rates, domain.TaxRate{Rate: rate, Label: r.Label})
	}
	return brackets, rates, nil
}

func ensureDefaults() {
	loadDefaults.Do(func() {
		defaultBrackets, defaultRates, defaultsErr = ParseReferenceData(defaultsYAML)
	})
	if defaultsErr != nil {
		panic(fmt.Sprintf("embedded reference data is invalid: %v", defaultsErr))
	}
}

// DefaultTaxBrackets returns a copy of the built-in income tax scale.
func DefaultTaxBrackets() []domain.TaxBracket {
	ensureDefaults()
	out := make([]domain.TaxBracket, len(defaultBrackets))
	copy(out, defaultBrackets)
	return out
}

// DefaultTaxRates returns a copy of the built-in VAT rate table.
func DefaultTaxRates() []domain.TaxRate {
	ensureDefaults()
	out := make([]domain.TaxRate, len(defaultRates))
	copy(out, defaultRates)
	return out
}
