package repository

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/maxviazov/customers-service/internal/model"
)

// ValidateCustomer checks a stored record against the customer contract.
// Violations wrap ErrCorruptRecord.
func ValidateCustomer(c model.Customer) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: customer %d has an empty name", ErrCorruptRecord, c.ID)
	case c.Employees < 0:
		return fmt.Errorf("%w: customer %d has negative employees (%d)", ErrCorruptRecord, c.ID, c.Employees)
	case !slices.Contains(model.Industries, c.Industry):
		return fmt.Errorf("%w: customer %d has unknown industry %q", ErrCorruptRecord, c.ID, c.Industry)
	}
	return nil
}

// NormalizeCollection validates every record, rejects duplicate ids and
// orders the collection by ascending id. It sorts in place.
func NormalizeCollection(customers []model.Customer) ([]model.Customer, error) {
	seen := make(map[int64]struct{}, len(customers))
	for _, c := range customers {
		if err := ValidateCustomer(c); err != nil {
			return nil, err
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate customer id %d", ErrCorruptRecord, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	slices.SortStableFunc(customers, func(a, b model.Customer) int { return cmp.Compare(a.ID, b.ID) })
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}
