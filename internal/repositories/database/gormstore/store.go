// Package gormstore is an embedded SQLite store behind the same repository
// ports as the PostgreSQL adapter. It serves local runs and adapter tests.
package gormstore

import (
	"context"
	"fmt"

	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"github.com/djoufack/cashpilot/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store implements every repository port over a single GORM handle.
type Store struct {
	db *gorm.DB
}

var (
	_ portsrepo.LedgerRecordReader             = (*Store)(nil)
	_ portsrepo.ReferenceDataReader            = (*Store)(nil)
	_ portsrepo.ReconciliationRepositoryFacade = (*Store)(nil)
)

// Open opens (or creates) the SQLite database at dsn and migrates the schema.
func Open(dsn string, debug bool) (*Store, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	for _, m := range []any{
		&models.Invoice{}, &models.Expense{}, &models.SupplierInvoice{}, &models.BankTransaction{},
		&models.ChartAccount{}, &models.AccountMapping{}, &models.TaxBracket{}, &models.TaxRate{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return nil, fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return &Store{db: db}, nil
}

// Provider exposes the store under every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:         s,
		ReferenceRepo:      s,
		ReconciliationRepo: s,
	}
}

// Seed inserts model rows, each as its own record set.
func (s *Store) Seed(ctx context.Context, rows ...any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			if err := tx.Create(r).Error; err != nil {
				return fmt.Errorf("seed %T: %w", r, err)
			}
		}
		return nil
	})
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
