package service

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maxviazov/customers-service/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListQuery is the raw listing request as it arrives from the transport.
// An empty field means the parameter was absent or given without a value.
type ListQuery struct {
	Page     string
	Limit    string
	Size     string
	Industry string
}

// ListParams is the validated, normalized form of ListQuery.
type ListParams struct {
	Page     int
	Limit    int
	Size     model.Size
	Industry model.Industry
}

// ParseListParams validates a raw query and normalizes it. Rules run in a fixed
// order (pagination, size, industry) and the first failure is returned.
func ParseListParams(q ListQuery) (ListParams, error) {
	page, ok := parsePositive(q.Page, defaultPage)
	if !ok {
		return ListParams{}, &ValidationError{Kind: InvalidPagination, Param: "page"}
	}
	limit, ok := parsePositive(q.Limit, defaultLimit)
	if !ok {
		return ListParams{}, &ValidationError{Kind: InvalidPagination, Param: "limit"}
	}

	size := model.SizeAll
	if q.Size != "" {
		size = model.Size(q.Size)
		if !IsValidSize(size) {
			return ListParams{}, &ValidationError{Kind: UnsupportedSize, Param: "size"}
		}
	}

	industry := model.IndustryAll
	if q.Industry != "" {
		industry = model.Industry(q.Industry)
		if !IsValidIndustry(industry) {
			return ListParams{}, &ValidationError{Kind: UnsupportedIndustry, Param: "industry"}
		}
	}

	return ListParams{Page: page, Limit: limit, Size: size, Industry: industry}, nil
}

// IsValidSize reports whether s is a size category or the All selector.
// Matching is exact and case-sensitive.
func IsValidSize(s model.Size) bool {
	return s == model.SizeAll || slices.Contains(model.Sizes, s)
}

// IsValidIndustry reports whether i is an industry category or the All selector.
func IsValidIndustry(i model.Industry) bool {
	return i == model.IndustryAll || slices.Contains(model.Industries, i)
}

func parsePositive(raw string, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
