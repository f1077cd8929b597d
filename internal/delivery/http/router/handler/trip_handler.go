// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"transit/internal/delivery/http/response"
	"transit/internal/domain/entity"
	"transit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TripHandler holds dependencies for trip planning handlers.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlanTripRequest is the payload for a trip planning request.
type PlanTripRequest struct {
	StartLat  float64 `json:"startLat" validate:"required,latitude"`
	StartLng  float64 `json:"startLng" validate:"required,longitude"`
	EndLat    float64 `json:"endLat" validate:"required,latitude"`
	EndLng    float64 `json:"endLng" validate:"required,longitude"`
	Departure string  `json:"departure,omitempty"` // RFC 3339; empty means now
}

// SearchPlaces handles the free-text place search request.
func (h *TripHandler) SearchPlaces(c echo.Context) error {
	query := c.QueryParam("q")

	results, err := h.uc.SearchPlaces(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Places retrieved successfully")
}

// PlanTrip handles the trip planning request.
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var input PlanTripRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip planning input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	var departure time.Time
	if input.Departure != "" {
		parsed, err := time.Parse(time.RFC3339, input.Departure)
		if err != nil {
			return response.BadRequest(c, "INVALID_DEPARTURE", "Departure must be RFC 3339 formatted")
		}
		departure = parsed
	}

	result, err := h.uc.PlanTrip(c.Request().Context(), usecase.PlanRequest{
		Start:     entity.Coordinate{Lat: input.StartLat, Lng: input.StartLng},
		End:       entity.Coordinate{Lat: input.EndLat, Lng: input.EndLng},
		Departure: departure,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Trip planned successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
