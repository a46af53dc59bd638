package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/maxviazov/customers-service/internal/repository/contract"
	"github.com/maxviazov/customers-service/internal/repository/sqlite"
)

func openTemp(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "customers.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return repo
}

func makeRepo(t *testing.T, seed []model.Customer) (repository.CustomerRepository, func()) {
	repo := openTemp(t)
	if err := repo.Import(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo, func() { _ = repo.Close() }
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	repo := openTemp(t)
	return repo, func() { _ = repo.Close() }
}

func TestCustomerRepository_SQLiteContract(t *testing.T) {
	contract.RunCustomerRepositoryContract(t, makeRepo)
}

func TestPinger_SQLiteContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}

func TestImport_RejectsCorruptRecord(t *testing.T) {
	repo := openTemp(t)
	t.Cleanup(func() { _ = repo.Close() })

	err := repo.Import(context.Background(), []model.Customer{{ID: 1, Name: "A", Industry: "Mining"}})
	if err == nil {
		t.Fatalf("expected error for unknown industry")
	}
	n, err := repo.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected nothing imported, got n=%d err=%v", n, err)
	}
}

func TestImport_DuplicateIDRollsBack(t *testing.T) {
	repo := openTemp(t)
	t.Cleanup(func() { _ = repo.Close() })

	seed := []model.Customer{
		{ID: 1, Name: "A", Industry: model.IndustryHR},
		{ID: 1, Name: "B", Industry: model.IndustryHR},
	}
	if err := repo.Import(context.Background(), seed); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	n, err := repo.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected rollback, got n=%d err=%v", n, err)
	}
}
