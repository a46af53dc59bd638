package memory_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/maxviazov/customers-service/internal/repository/contract"
	"github.com/maxviazov/customers-service/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRepo(t *testing.T, seed []model.Customer) (repository.CustomerRepository, func()) {
	repo, err := memory.New(seed)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	return repo, func() {}
}

func makeFileRepo(t *testing.T, seed []model.Customer) (repository.CustomerRepository, func()) {
	path := writeDataset(t, seed)
	repo, err := memory.Open(path)
	if err != nil {
		t.Fatalf("memory.Open: %v", err)
	}
	return repo, func() {}
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	repo, err := memory.NewBundled()
	if err != nil {
		t.Fatalf("memory.NewBundled: %v", err)
	}
	return repo, func() {}
}

func writeDataset(t *testing.T, customers []model.Customer) string {
	t.Helper()
	if customers == nil {
		customers = []model.Customer{}
	}
	data, err := json.Marshal(customers)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCustomerRepository_MemoryContract(t *testing.T) {
	contract.RunCustomerRepositoryContract(t, makeRepo)
}

func TestCustomerRepository_FileContract(t *testing.T) {
	contract.RunCustomerRepositoryContract(t, makeFileRepo)
}

func TestPinger_MemoryContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}

func TestNewBundled_DatasetIsValid(t *testing.T) {
	repo, err := memory.NewBundled()
	require.NoError(t, err)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 45)

	var nullContact, nullAddress bool
	for _, c := range all {
		nullContact = nullContact || c.ContactInfo == nil
		nullAddress = nullAddress || c.Address == nil
		if c.Address != nil {
			assert.Equal(t, "United States of America", c.Address.Country)
		}
	}
	assert.True(t, nullContact, "bundled dataset should include a null contactInfo")
	assert.True(t, nullAddress, "bundled dataset should include a null address")
}

func TestNew_RejectsCorruptRecords(t *testing.T) {
	cases := []struct {
		name string
		in   []model.Customer
	}{
		{"empty name", []model.Customer{{ID: 1, Name: " ", Industry: model.IndustryHR}}},
		{"negative employees", []model.Customer{{ID: 1, Name: "A", Employees: -1, Industry: model.IndustryHR}}},
		{"unknown industry", []model.Customer{{ID: 1, Name: "A", Industry: "Mining"}}},
		{"duplicate id", []model.Customer{
			{ID: 1, Name: "A", Industry: model.IndustryHR},
			{ID: 1, Name: "B", Industry: model.IndustryHR},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := memory.New(tc.in)
			assert.ErrorIs(t, err, repository.ErrCorruptRecord)
		})
	}
}

func TestOpen_MissingFileIsUnavailable(t *testing.T) {
	_, err := memory.Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, repository.ErrSourceUnavailable)
}

func TestOpen_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":`), 0o644))
	_, err := memory.Open(path)
	assert.ErrorIs(t, err, repository.ErrCorruptRecord)
}

func TestReload_SwapsSnapshot(t *testing.T) {
	seed := contract.Seed()
	path := writeDataset(t, seed[:2])
	repo, err := memory.Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	before, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 2)

	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	n, err := repo.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed), n)

	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(seed))
	assert.Len(t, before, 2, "earlier snapshot must not change")
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	path := writeDataset(t, contract.Seed())
	repo, err := memory.Open(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"","industry":"HR"}]`), 0o644))
	_, err = repo.Reload(context.Background())
	assert.ErrorIs(t, err, repository.ErrCorruptRecord)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(contract.Seed()))
}

func TestReload_WithoutFile(t *testing.T) {
	repo, err := memory.NewBundled()
	require.NoError(t, err)
	_, err = repo.Reload(context.Background())
	assert.True(t, errors.Is(err, memory.ErrNotReloadable))
}

func TestListAll_CanceledContext(t *testing.T) {
	repo, err := memory.NewBundled()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
