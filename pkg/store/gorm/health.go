package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore provides health check operations using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity pings the pool and runs a trivial query
func (s *HealthStore) CheckConnectivity(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrapErr(err, "failed to get connection pool")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrapErr(err, "failed to ping database")
	}
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return wrapErr(err, "failed to query database")
	}
	return nil
}
