package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// ChartAccount is a row of the chart_of_accounts table.
type ChartAccount struct {
	UserID          string         `db:"user_id" gorm:"column:user_id;primaryKey"`
	AccountCode     string         `db:"account_code" gorm:"column:account_code;primaryKey"`
	AccountName     string         `db:"account_name" gorm:"column:account_name"`
	AccountType     string         `db:"account_type" gorm:"column:account_type"`
	AccountCategory sql.NullString `db:"account_category" gorm:"column:account_category"`
}

func (ChartAccount) TableName() string { return "chart_of_accounts" }

// AccountMapping is a row of the accounting_mappings table.
type AccountMapping struct {
	ID                    string         `db:"id" gorm:"column:id;primaryKey"`
	UserID                string         `db:"user_id" gorm:"column:user_id;index"`
	SourceType            string         `db:"source_type" gorm:"column:source_type"`
	SourceCategory        sql.NullString `db:"source_category" gorm:"column:source_category"`
	AmountAccountCode     string         `db:"amount_account_code" gorm:"column:amount_account_code"`
	VATAccountCode        sql.NullString `db:"vat_account_code" gorm:"column:vat_account_code"`
	SettlementAccountCode sql.NullString `db:"settlement_account_code" gorm:"column:settlement_account_code"`
}

func (AccountMapping) TableName() string { return "accounting_mappings" }

// TaxBracket is a row of the tax_brackets table. A NULL max is the open top bracket.
type TaxBracket struct {
	ID        string              `db:"id" gorm:"column:id;primaryKey"`
	UserID    string              `db:"user_id" gorm:"column:user_id;index"`
	MinIncome decimal.Decimal     `db:"min_income" gorm:"column:min_income;type:numeric"`
	MaxIncome decimal.NullDecimal `db:"max_income" gorm:"column:max_income;type:numeric"`
	Rate      decimal.Decimal     `db:"rate" gorm:"column:rate;type:numeric"`
}

func (TaxBracket) TableName() string { return "tax_brackets" }

// TaxRate is a row of the tax_rates table. Position orders the buckets.
type TaxRate struct {
	ID       string          `db:"id" gorm:"column:id;primaryKey"`
	UserID   string          `db:"user_id" gorm:"column:user_id;index"`
	Rate     decimal.Decimal `db:"rate" gorm:"column:rate;type:numeric"`
	Label    string          `db:"label" gorm:"column:label"`
	Position int             `db:"position" gorm:"column:position"`
}

func (TaxRate) TableName() string { return "tax_rates" }
