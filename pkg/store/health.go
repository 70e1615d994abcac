package store

import "context"

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies the database accepts connections and queries
	CheckConnectivity(ctx context.Context) error
}
