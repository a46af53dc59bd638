// Package sqlite serves the customer collection from a SQLite file.
// The blank import registers the "sqlite3" driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id            INTEGER PRIMARY KEY,
	name          TEXT    NOT NULL CHECK (length(trim(name)) > 0),
	employees     INTEGER NOT NULL CHECK (employees >= 0),
	industry      TEXT    NOT NULL,
	contact_name  TEXT,
	contact_email TEXT,
	street        TEXT,
	city          TEXT,
	state         TEXT,
	zip_code      TEXT,
	country       TEXT
)`

type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and makes sure the table exists.
func Open(ctx context.Context, path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: sqlite schema: %v", repository.ErrSourceUnavailable, err)
	}
	return &Repository{db: db}, nil
}

// Count reports how many customers are stored.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	return n, nil
}

// Import writes customers in one transaction. It is a bootstrap helper for
// empty databases; the listing path never writes.
func (r *Repository) Import(ctx context.Context, customers []model.Customer) error {
	for _, c := range customers {
		if err := repository.ValidateCustomer(c); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (id, name, employees, industry,
			contact_name, contact_email, street, city, state, zip_code, country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range customers {
		var contactName, contactEmail sql.NullString
		if c.ContactInfo != nil {
			contactName = sql.NullString{String: c.ContactInfo.Name, Valid: true}
			contactEmail = sql.NullString{String: c.ContactInfo.Email, Valid: true}
		}
		var street, city, state, zip, country sql.NullString
		if c.Address != nil {
			street = sql.NullString{String: c.Address.Street, Valid: true}
			city = sql.NullString{String: c.Address.City, Valid: true}
			state = sql.NullString{String: c.Address.State, Valid: true}
			zip = sql.NullString{String: c.Address.ZipCode, Valid: true}
			country = sql.NullString{String: c.Address.Country, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Employees, string(c.Industry),
			contactName, contactEmail, street, city, state, zip, country); err != nil {
			return fmt.Errorf("import customer %d: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func (r *Repository) ListAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, employees, industry,
		       contact_name, contact_email, street, city, state, zip_code, country
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		var industry string
		var contactName, contactEmail sql.NullString
		var street, city, state, zip, country sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Employees, &industry,
			&contactName, &contactEmail, &street, &city, &state, &zip, &country); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrCorruptRecord, err)
		}
		c.Industry = model.Industry(industry)
		if contactName.Valid || contactEmail.Valid {
			c.ContactInfo = &model.ContactInfo{Name: contactName.String, Email: contactEmail.String}
		}
		if street.Valid || city.Valid || state.Valid || zip.Valid || country.Valid {
			c.Address = &model.Address{
				Street:  street.String,
				City:    city.String,
				State:   state.String,
				ZipCode: zip.String,
				Country: country.String,
			}
		}
		if err := repository.ValidateCustomer(c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	return out, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	return nil
}

func (r *Repository) Close() error { return r.db.Close() }

var _ repository.Source = (*Repository)(nil)
