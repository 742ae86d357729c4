package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountAsset     AccountType = "asset"
	AccountLiability AccountType = "liability"
	AccountEquity    AccountType = "equity"
	AccountRevenue   AccountType = "revenue"
	AccountExpense   AccountType = "expense"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountAsset, AccountLiability, AccountEquity, AccountRevenue, AccountExpense:
		return true
	}
	return false
}

// ChartAccount is an entry of a user's chart of accounts. Immutable reference data.
type ChartAccount struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Category string      `json:"category"`
}

// AccountMapping links a record kind, optionally narrowed to an expense category,
// to the chart accounts its amounts are posted to. An empty Category matches any.
type AccountMapping struct {
	SourceKind        RecordKind `json:"sourceKind"`
	Category          string     `json:"category,omitempty"`
	AmountAccount     string     `json:"amountAccount"`               // HT amount: revenue or expense account
	VATAccount        string     `json:"vatAccount,omitempty"`        // VAT collected / deductible
	SettlementAccount string     `json:"settlementAccount,omitempty"` // TTC side: bank, receivable or payable
}

// Codes lists the non-empty account codes the rule references.
func (m AccountMapping) Codes() []string {
	codes := make([]string, 0, 3)
	for _, c := range []string{m.AmountAccount, m.VATAccount, m.SettlementAccount} {
		if c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}
