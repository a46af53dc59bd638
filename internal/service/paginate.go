package service

import (
	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
)

// Paginate cuts page (1-based) of size limit out of filtered and describes it.
// A page past the end is empty, not an error, and CurrentPage always echoes page.
func Paginate(filtered []model.Customer, page, limit int) ([]model.Customer, model.PageInfo) {
	total := repository.PageResult[model.Customer]{Total: len(filtered)}
	info := model.PageInfo{
		CurrentPage:    page,
		TotalPages:     total.TotalPages(limit),
		TotalCustomers: len(filtered),
	}
	// page-1 < TotalPages keeps (page-1)*limit below len(filtered).
	if page < 1 || page-1 >= info.TotalPages {
		return []model.Customer{}, info
	}
	return repository.Slice(filtered, repository.PageAt(page, limit)).Items, info
}
