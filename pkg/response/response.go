// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/maxviazov/customers-service/internal/service"
)

// Messages for failures that are not the client's fault.
const (
	MsgSourceUnavailable = "Customer data is temporarily unavailable."
	MsgInternal          = "internal server error"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error string `json:"error"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Validation failures keep their exact message; anything else is opaque to the client.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{}
	}

	if ve, ok := service.AsValidation(err); ok {
		return http.StatusBadRequest, ErrorPayload{Error: ve.Message()}
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, ErrorPayload{Error: service.ErrInvalidInput.Error()}
	case errors.Is(err, repository.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, ErrorPayload{Error: MsgSourceUnavailable}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: MsgInternal}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
