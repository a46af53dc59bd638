package service

import (
	"context"
	"time"

	"github.com/maxviazov/customers-service/internal/model"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/rs/zerolog"
)

// customerService runs the listing pipeline: validate, load snapshot, filter, paginate.
// It holds no per-request state and is safe for concurrent use.
type customerService struct {
	repo repository.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	l := logger.With().Str("module", "service").Str("component", "customer").Logger()
	return &customerService{repo: repo, log: l}
}

func (s *customerService) ListCustomers(ctx context.Context, q ListQuery) (model.CustomerPage, error) {
	start := time.Now()
	params, err := ParseListParams(q)
	if err != nil {
		s.log.Debug().Err(err).Interface("query", q).Msg("customer listing rejected")
		return model.CustomerPage{}, err
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Msg("load customers failed")
		return model.CustomerPage{}, err
	}

	filtered := FilterCustomers(all, params.Size, params.Industry)
	items, info := Paginate(filtered, params.Page, params.Limit)

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("page", params.Page).
		Int("limit", params.Limit).
		Str("size", string(params.Size)).
		Str("industry", string(params.Industry)).
		Int("total", info.TotalCustomers).
		Int("returned", len(items)).
		Msg("customers listed")

	return model.CustomerPage{Customers: items, PageInfo: info}, nil
}
