// Package contract holds behaviour every customer source must share.
// Each driver package runs the suite against its own factory.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
)

// CustomerFactory returns a repository pre-loaded with seed and a cleanup func.
type CustomerFactory func(t *testing.T, seed []model.Customer) (repository.CustomerRepository, func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

const pingTimeout = 2 * time.Second

// Seed is a small collection covering nullable fields and every industry.
func Seed() []model.Customer {
	return []model.Customer{
		{
			ID: 3, Name: "Atlas Cargo", Employees: 12000, Industry: model.IndustryLogistics,
			ContactInfo: &model.ContactInfo{Name: "Ava Lopez", Email: "ava@atlas.example"},
			Address:     &model.Address{Street: "1 Dock Rd", City: "Miami", State: "FL", ZipCode: "33101", Country: "United States of America"},
		},
		{ID: 1, Name: "Corner Shop", Employees: 8, Industry: model.IndustryRetail},
		{
			ID: 2, Name: "Byte Forge", Employees: 450, Industry: model.IndustryTechnology,
			ContactInfo: &model.ContactInfo{Name: "Noah Kim", Email: "noah@byteforge.example"},
		},
		{
			ID: 5, Name: "Maple Payroll", Employees: 150, Industry: model.IndustryHR,
			Address: &model.Address{Street: "9 King St", City: "Toronto", State: "ON", ZipCode: "M5H 1A1", Country: "Canada"},
		},
		{ID: 4, Name: "Goldcrest", Employees: 75000, Industry: model.IndustryFinance},
	}
}

func RunCustomerRepositoryContract(t *testing.T, makeRepo CustomerFactory) {
	t.Helper()

	t.Run("ordered_by_id", func(t *testing.T) {
		repo, cleanup := makeRepo(t, Seed())
		t.Cleanup(cleanup)
		got, err := repo.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 customers, got %d", len(got))
		}
		for i, c := range got {
			if c.ID != int64(i+1) {
				t.Fatalf("position %d: expected id %d, got %d", i, i+1, c.ID)
			}
		}
	})

	t.Run("nullable_fields_roundtrip", func(t *testing.T) {
		repo, cleanup := makeRepo(t, Seed())
		t.Cleanup(cleanup)
		got, err := repo.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		byID := map[int64]model.Customer{}
		for _, c := range got {
			byID[c.ID] = c
		}
		if c := byID[1]; c.ContactInfo != nil || c.Address != nil {
			t.Fatalf("customer 1: expected null contact and address, got %+v", c)
		}
		if c := byID[2]; c.ContactInfo == nil || c.ContactInfo.Email != "noah@byteforge.example" || c.Address != nil {
			t.Fatalf("customer 2: unexpected nullable fields %+v", c)
		}
		if c := byID[3]; c.Address == nil || c.Address.ZipCode != "33101" || c.Address.Country != "United States of America" {
			t.Fatalf("customer 3: unexpected address %+v", c.Address)
		}
		if c := byID[3]; c.Employees != 12000 || c.Industry != model.IndustryLogistics || c.Name != "Atlas Cargo" {
			t.Fatalf("customer 3: unexpected scalar fields %+v", c)
		}
	})

	t.Run("international_address_kept", func(t *testing.T) {
		repo, cleanup := makeRepo(t, Seed())
		t.Cleanup(cleanup)
		got, err := repo.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, c := range got {
			if c.ID == 5 && (c.Address == nil || c.Address.Country != "Canada") {
				t.Fatalf("customer 5: expected Canadian address, got %+v", c.Address)
			}
		}
	})

	t.Run("empty_source", func(t *testing.T) {
		repo, cleanup := makeRepo(t, nil)
		t.Cleanup(cleanup)
		got, err := repo.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("caller_owns_result", func(t *testing.T) {
		repo, cleanup := makeRepo(t, Seed())
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		first[0].Name = "mutated"
		second, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("second list failed: %v", err)
		}
		if second[0].Name == "mutated" {
			t.Fatalf("repository leaked its internal slice")
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()

	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
	})
}
