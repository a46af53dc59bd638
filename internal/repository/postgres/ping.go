package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/customers-service/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger adapts pgxpool to the repository.Pinger interface.
func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	return repository.MapPgError(p.pool.Ping(ctx))
}

// Source ties the customer repository, pinger and pool lifetime together.
type Source struct {
	repository.CustomerRepository
	repository.Pinger
	pool *pgxpool.Pool
}

func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{
		CustomerRepository: NewCustomerRepository(pool),
		Pinger:             NewPinger(pool),
		pool:               pool,
	}
}

func (s *Source) Close() error {
	s.pool.Close()
	return nil
}

var _ repository.Source = (*Source)(nil)
