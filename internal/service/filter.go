package service

import "github.com/maxviazov/customers-service/internal/model"

// FilterCustomers returns the customers matching both selectors, in their
// original order. Size is always recomputed from the employee count, so a
// stale stored value can neither match a filter nor leak into the result.
// The input slice is not modified.
func FilterCustomers(all []model.Customer, size model.Size, industry model.Industry) []model.Customer {
	out := make([]model.Customer, 0, len(all))
	for _, c := range all {
		c.Size = ClassifySize(c.Employees)
		if size != model.SizeAll && c.Size != size {
			continue
		}
		if industry != model.IndustryAll && c.Industry != industry {
			continue
		}
		out = append(out, c)
	}
	return out
}
