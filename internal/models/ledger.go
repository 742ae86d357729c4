package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table. Amount columns are nullable in the
// source schema; mapping turns NULL into zero.
type Invoice struct {
	ID            string              `db:"id" gorm:"column:id;primaryKey"`
	UserID        string              `db:"user_id" gorm:"column:user_id;index"`
	InvoiceNumber sql.NullString      `db:"invoice_number" gorm:"column:invoice_number"`
	ClientID      sql.NullString      `db:"client_id" gorm:"column:client_id"`
	ClientName    sql.NullString      `db:"client_name" gorm:"column:client_name"`
	TotalHT       decimal.NullDecimal `db:"total_ht" gorm:"column:total_ht;type:numeric"`
	TotalTTC      decimal.NullDecimal `db:"total_ttc" gorm:"column:total_ttc;type:numeric"`
	TaxRate       decimal.NullDecimal `db:"tax_rate" gorm:"column:tax_rate;type:numeric"`
	Status        string              `db:"status" gorm:"column:status"`
	InvoiceDate   time.Time           `db:"invoice_date" gorm:"column:invoice_date"`
	PaidAt        sql.NullTime        `db:"paid_at" gorm:"column:paid_at"`
	AuditFields
}

func (Invoice) TableName() string { return "invoices" }

// Expense is a row of the expenses table.
type Expense struct {
	ID          string              `db:"id" gorm:"column:id;primaryKey"`
	UserID      string              `db:"user_id" gorm:"column:user_id;index"`
	Amount      decimal.NullDecimal `db:"amount" gorm:"column:amount;type:numeric"`
	TaxAmount   decimal.NullDecimal `db:"tax_amount" gorm:"column:tax_amount;type:numeric"`
	TaxRate     decimal.NullDecimal `db:"tax_rate" gorm:"column:tax_rate;type:numeric"`
	Category    sql.NullString      `db:"category" gorm:"column:category"`
	ExpenseDate time.Time           `db:"expense_date" gorm:"column:expense_date"`
}

func (Expense) TableName() string { return "expenses" }

// SupplierInvoice is a row of the supplier_invoices table.
type SupplierInvoice struct {
	ID            string              `db:"id" gorm:"column:id;primaryKey"`
	UserID        string              `db:"user_id" gorm:"column:user_id;index"`
	TotalAmount   decimal.NullDecimal `db:"total_amount" gorm:"column:total_amount;type:numeric"`
	VATAmount     decimal.NullDecimal `db:"vat_amount" gorm:"column:vat_amount;type:numeric"`
	PaymentStatus sql.NullString      `db:"payment_status" gorm:"column:payment_status"`
	InvoiceDate   time.Time           `db:"invoice_date" gorm:"column:invoice_date"`
}

func (SupplierInvoice) TableName() string { return "supplier_invoices" }

// BankTransaction is a row of the bank_transactions table. InvoiceID is set
// once, by reconciliation.
type BankTransaction struct {
	ID              string          `db:"id" gorm:"column:id;primaryKey"`
	UserID          string          `db:"user_id" gorm:"column:user_id;index"`
	Amount          decimal.Decimal `db:"amount" gorm:"column:amount;type:numeric"`
	TransactionDate time.Time       `db:"transaction_date" gorm:"column:transaction_date"`
	Reference       sql.NullString  `db:"reference" gorm:"column:reference"`
	Description     sql.NullString  `db:"description" gorm:"column:description"`
	InvoiceID       sql.NullString  `db:"invoice_id" gorm:"column:invoice_id"`
	MatchConfidence sql.NullFloat64 `db:"match_confidence" gorm:"column:match_confidence"`
	ReconciledAt    sql.NullTime    `db:"reconciled_at" gorm:"column:reconciled_at"`
	AuditFields
}

func (BankTransaction) TableName() string { return "bank_transactions" }
