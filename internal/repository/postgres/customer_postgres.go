package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
)

const listCustomersSQL = `
	SELECT id, name, employees, industry,
	       contact_name, contact_email,
	       street, city, state, zip_code, country
	FROM customers
	ORDER BY id`

type customerRepository struct{ pool *pgxpool.Pool }

func NewCustomerRepository(pool *pgxpool.Pool) repository.CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

// scanCustomer reads one row; nullable column groups become nil sub-structs.
func scanCustomer(row pgx.Row) (model.Customer, error) {
	var (
		c                         model.Customer
		industry                  string
		contactName, contactEmail *string
		street, city, state       *string
		zip, country              *string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Employees, &industry,
		&contactName, &contactEmail,
		&street, &city, &state, &zip, &country); err != nil {
		return model.Customer{}, repository.MapPgError(err)
	}
	c.Industry = model.Industry(industry)
	if contactName != nil || contactEmail != nil {
		c.ContactInfo = &model.ContactInfo{Name: deref(contactName), Email: deref(contactEmail)}
	}
	if street != nil || city != nil || state != nil || zip != nil || country != nil {
		c.Address = &model.Address{
			Street:  deref(street),
			City:    deref(city),
			State:   deref(state),
			ZipCode: deref(zip),
			Country: deref(country),
		}
	}
	if err := repository.ValidateCustomer(c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}

var _ repository.CustomerRepository = (*customerRepository)(nil)
