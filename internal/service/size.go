package service

import "github.com/maxviazov/customers-service/internal/model"

// ClassifySize maps an employee count onto its size category using half-open
// bands: [0,100) Small, [100,1000) Medium, [1000,10000) Enterprise,
// [10000,50000) Large Enterprise, [50000,∞) Very Large Enterprise.
// Negative counts are a data source bug and fall into Small.
func ClassifySize(employees int) model.Size {
	switch {
	case employees < 100:
		return model.SizeSmall
	case employees < 1000:
		return model.SizeMedium
	case employees < 10000:
		return model.SizeEnterprise
	case employees < 50000:
		return model.SizeLargeEnterprise
	default:
		return model.SizeVeryLargeEnterprise
	}
}
