package models

import "time"

// AuditFields are the bookkeeping timestamps carried by mutable rows.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `db:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}
