package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// Error kinds carried in the response envelope.
const (
	kindValidation = "validation_error"
	kindNotFound   = "not_found"
	kindConflict   = "conflict"
	kindUnavail    = "unavailable"
	kindInternal   = "internal_error"
)

// ErrorBody is the JSON error envelope every non-2xx response carries.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo describes one error: a machine-readable kind, a human-readable
// message, and optional structured details.
type ErrorInfo struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// respondError writes the error envelope with the given status.
func respondError(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, &ErrorBody{Error: ErrorInfo{Kind: kind, Message: message}})
}

// respondValidationError writes a 400 with the offending field in details.
func respondValidationError(c *gin.Context, field, message string) {
	body := &ErrorBody{Error: ErrorInfo{Kind: kindValidation, Message: message}}
	if field != "" {
		body.Error.Details = map[string]any{"field": field}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondValidationError(c, validErr.Field, validErr.Error())
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, kindNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrNotCancellable) {
		respondError(c, http.StatusConflict, kindConflict, "resource is not in a cancellable state")
		return
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		respondError(c, http.StatusConflict, kindConflict, "resource changed concurrently, retry or check its state")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, kindConflict, "resource already exists")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	respondError(c, http.StatusInternalServerError, kindInternal, "internal server error")
}
