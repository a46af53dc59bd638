// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: request validation, filtering, pagination and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/customers-service/internal/model"
)

// ErrInvalidInput is the marker error for client input failures (maps to HTTP 400).
// The concrete error is always a *ValidationError carrying the exact message.
var ErrInvalidInput = errors.New("invalid input")

// ValidationKind classifies a rejected listing request.
type ValidationKind string

const (
	InvalidPagination   ValidationKind = "InvalidPagination"
	UnsupportedSize     ValidationKind = "UnsupportedSize"
	UnsupportedIndustry ValidationKind = "UnsupportedIndustry"
)

// Client-facing messages. The wording is part of the API contract.
const (
	MsgInvalidPagination   = "Invalid page or limit. Both must be positive numbers."
	MsgUnsupportedSize     = "Unsupported size value. Supported values are All, Small, Medium, Enterprise, Large Enterprise, and Very Large Enterprise."
	MsgUnsupportedIndustry = "Unsupported industry value. Supported values are All, Logistics, Retail, Technology, HR, and Finance."
)

// ValidationError describes the first rule a listing request broke.
type ValidationError struct {
	Kind ValidationKind
	// Param is the offending query parameter, for logs only.
	Param string
}

func (e *ValidationError) Error() string { return e.Message() }
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Message returns the exact client-facing message for the error kind.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case InvalidPagination:
		return MsgInvalidPagination
	case UnsupportedSize:
		return MsgUnsupportedSize
	case UnsupportedIndustry:
		return MsgUnsupportedIndustry
	default:
		return ErrInvalidInput.Error()
	}
}

// AsValidation extracts a *ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CustomerService defines the customer listing use case.
type CustomerService interface {
	ListCustomers(ctx context.Context, q ListQuery) (model.CustomerPage, error)
}
