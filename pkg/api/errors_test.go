package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectKind string
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("topic", "missing field"),
			expectCode: http.StatusBadRequest,
			expectKind: kindValidation,
			expectMsg:  "missing field",
		},
		{
			name:       "invalid input maps to 400",
			err:        fmt.Errorf("wrapped: %w", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectKind: kindValidation,
			expectMsg:  "invalid input",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectKind: kindNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "not cancellable maps to 409",
			err:        services.ErrNotCancellable,
			expectCode: http.StatusConflict,
			expectKind: kindConflict,
			expectMsg:  "not in a cancellable state",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        services.ErrConcurrentModification,
			expectCode: http.StatusConflict,
			expectKind: kindConflict,
			expectMsg:  "changed concurrently",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectKind: kindConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectKind: kindInternal,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.expectKind, body.Error.Kind)
			assert.Contains(t, body.Error.Message, tt.expectMsg)
		})
	}

	t.Run("validation error carries the field in details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondServiceError(c, services.NewValidationError("learner_level", "unknown level"))

		body := decodeErrorBody(t, rec)
		assert.Equal(t, "learner_level", body.Error.Details["field"])
	})
}
