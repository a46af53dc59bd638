package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	// ErrSourceUnavailable means the customer collection could not be obtained
	// right now (connection refused, database shutting down, schema missing).
	ErrSourceUnavailable = errors.New("customer source unavailable")
	// ErrCorruptRecord means a stored record violates the customer contract.
	ErrCorruptRecord = errors.New("corrupt customer record")
)

// MapPgError translates Postgres failures to domain errors.
// I only map what higher layers treat differently; everything else passes through.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgErr.Code == pgerrcode.UndefinedTable:
			return fmt.Errorf("%w: %s (%s)", ErrSourceUnavailable, pgErr.Message, pgErr.Code)
		case pgerrcode.IsDataException(pgErr.Code):
			return fmt.Errorf("%w: %s", ErrCorruptRecord, pgErr.Message)
		}
	}
	return err
}
