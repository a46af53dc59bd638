// Package memory serves the customer collection from an in-process snapshot
// decoded from JSON. The snapshot is swapped atomically on Reload, so readers
// never observe a partially loaded collection.
package memory

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync/atomic"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
)

//go:embed customers.json
var bundledDataset []byte

// ErrNotReloadable is returned by Reload for snapshots that have no backing file.
var ErrNotReloadable = errors.New("memory source has no backing file")

type Repository struct {
	path     string
	snapshot atomic.Pointer[[]model.Customer]
}

// New builds a repository over a fixed collection.
func New(customers []model.Customer) (*Repository, error) {
	normalized, err := repository.NormalizeCollection(slices.Clone(customers))
	if err != nil {
		return nil, err
	}
	r := &Repository{}
	r.snapshot.Store(&normalized)
	return r, nil
}

// NewBundled serves the dataset compiled into the binary.
func NewBundled() (*Repository, error) {
	customers, err := Decode(bytes.NewReader(bundledDataset))
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return New(customers)
}

// Open loads the JSON file at path; Reload re-reads the same file.
func Open(path string) (*Repository, error) {
	customers, err := readFile(path)
	if err != nil {
		return nil, err
	}
	r, err := New(customers)
	if err != nil {
		return nil, err
	}
	r.path = path
	return r, nil
}

// Decode reads a JSON array of customers. Stored "size" values are accepted and ignored downstream.
func Decode(rd io.Reader) ([]model.Customer, error) {
	var customers []model.Customer
	if err := json.NewDecoder(rd).Decode(&customers); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptRecord, err)
	}
	return customers, nil
}

func readFile(path string) ([]model.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	defer f.Close()
	customers, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return customers, nil
}

// ListAll returns a copy of the current snapshot.
func (r *Repository) ListAll(ctx context.Context) ([]model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := r.snapshot.Load()
	if snap == nil {
		return nil, repository.ErrSourceUnavailable
	}
	return slices.Clone(*snap), nil
}

// Reload re-reads the backing file and swaps the snapshot. On any error the
// previous snapshot stays in place.
func (r *Repository) Reload(ctx context.Context) (int, error) {
	if r.path == "" {
		return 0, ErrNotReloadable
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	customers, err := readFile(r.path)
	if err != nil {
		return 0, err
	}
	normalized, err := repository.NormalizeCollection(customers)
	if err != nil {
		return 0, err
	}
	r.snapshot.Store(&normalized)
	return len(normalized), nil
}

func (r *Repository) Ping(_ context.Context) error {
	if r.snapshot.Load() == nil {
		return repository.ErrSourceUnavailable
	}
	return nil
}

func (r *Repository) Close() error { return nil }

var _ repository.Source = (*Repository)(nil)
