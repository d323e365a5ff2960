package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("phase_id", "unknown phase"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "unknown phase",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "not authorized maps to 401",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotAuthorized),
			expectCode: http.StatusUnauthorized,
			expectMsg:  "not authorized",
		},
		{
			name:       "invalid state maps to 409",
			err:        fmt.Errorf("%w: queued -> done", services.ErrInvalidState),
			expectCode: http.StatusConflict,
			expectMsg:  "invalid state transition",
		},
		{
			name:       "cycle conflict maps to 409",
			err:        fmt.Errorf("%w: edge would create a cycle", services.ErrConflict),
			expectCode: http.StatusConflict,
			expectMsg:  "cycle",
		},
		{
			name:       "capacity exceeded maps to 429",
			err:        services.ErrCapacityExceeded,
			expectCode: http.StatusTooManyRequests,
			expectMsg:  "capacity exceeded",
		},
		{
			name:       "timeout maps to 408",
			err:        fmt.Errorf("%w: approval window elapsed", services.ErrTimeout),
			expectCode: http.StatusRequestTimeout,
			expectMsg:  "timed out",
		},
		{
			name:       "external provider maps to 502",
			err:        fmt.Errorf("%w: llm provider", services.ErrExternalUnavailable),
			expectCode: http.StatusBadGateway,
			expectMsg:  "unavailable",
		},
		{
			name:       "rejection maps to 422",
			err:        &services.RejectionError{TicketID: "t-1", Reason: "duplicate work"},
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "duplicate work",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapServiceError(tt.err)

			var he *echo.HTTPError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, fmt.Sprint(he.Message), tt.expectMsg)
		})
	}
}
