package repository

import (
	"context"

	"github.com/maxviazov/customers-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CustomerRepository is the read-only capability the listing pipeline needs.
// ListAll returns a fully materialized snapshot ordered by ascending id; an
// empty source yields an empty, non-nil slice. The returned slice belongs to
// the caller. Stored size values carry no meaning, size is derived upstream.
type CustomerRepository interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
}

// Source bundles what the application needs from a configured customer source.
type Source interface {
	CustomerRepository
	Pinger
	Close() error
}
