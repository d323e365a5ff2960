package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// RejectionResponse is returned when a human reviewer rejects a blocking
// create-ticket call. The agent reads the reason and moves on.
type RejectionResponse struct {
	TicketID string `json:"ticket_id"`
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason,omitempty"`
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var rejErr *services.RejectionError
	if errors.As(err, &rejErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, rejErr.Error())
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrNotAuthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	case errors.Is(err, services.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrCapacityExceeded):
		return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, services.ErrTimeout):
		return echo.NewHTTPError(http.StatusRequestTimeout, err.Error())
	case errors.Is(err, services.ErrExternalUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
