package repository

import "math"

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; filtering belongs to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// PageAt converts a 1-based page number and page size into a window for
// page >= 1 and limit >= 1. When (page-1)*limit does not fit in an int the
// offset saturates at math.MaxInt, which is past the end of any collection.
func PageAt(page, limit int) Page {
	if page < 1 || limit < 1 {
		return Page{Limit: limit}
	}
	if page-1 > math.MaxInt/limit {
		return Page{Limit: limit, Offset: math.MaxInt}
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}

// PageResult carries a slice of items and the total count the window was cut from.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}

// TotalPages is ceil(Total / limit); zero when there is nothing to page through.
func (r PageResult[T]) TotalPages(limit int) int {
	if r.Total <= 0 || limit <= 0 {
		return 0
	}
	pages := r.Total / limit
	if r.Total%limit != 0 {
		pages++
	}
	return pages
}

// Slice cuts the window out of items. A window starting past the end yields
// an empty, non-nil slice rather than an error.
func Slice[T any](items []T, p Page) PageResult[T] {
	total := len(items)
	res := PageResult[T]{Items: []T{}, Total: total}
	if p.Limit <= 0 || p.Offset < 0 || p.Offset >= total {
		return res
	}
	end := total
	if p.Limit < total-p.Offset {
		end = p.Offset + p.Limit
	}
	res.Items = append(res.Items, items[p.Offset:end]...)
	return res
}
