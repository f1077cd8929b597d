// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "transit/internal/domain/errors"
	"transit/internal/domain/service"
	"transit/internal/planner"
	"transit/internal/usecase"
)

const defaultMaxItineraries = 3

// tripService implements the TripUsecase interface.
type tripService struct {
	planner service.RoutePlanner
	logger  *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(
	routePlanner service.RoutePlanner,
	logger *slog.Logger,
) usecase.TripUsecase {
	return &tripService{
		planner: routePlanner,
		logger:  logger,
	}
}

// SearchPlaces performs a free-text place search against the routing provider.
func (srv *tripService) SearchPlaces(ctx context.Context, query string) ([]service.PlaceResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search query must not be empty")
	}

	results, err := srv.planner.SearchPlaces(ctx, query)
	if err != nil {
		srv.logger.Warn("Place search failed", "query", query, "error", err)

		return nil, domainerrors.ErrSearchFailed.WrapMessage(err.Error())
	}

	return results, nil
}

// PlanTrip requests itineraries between two coordinates and normalizes them
// for rendering. Provider itineraries in an unusable shape are dropped rather
// than failing the whole request.
func (srv *tripService) PlanTrip(ctx context.Context, req usecase.PlanRequest) (*usecase.PlanResult, error) {
	if !req.Start.IsFinite() || !req.End.IsFinite() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("start and end coordinates must be finite")
	}

	raw, err := srv.planner.PlanRoute(ctx, service.RouteRequest{
		StartLat:       req.Start.Lat,
		StartLng:       req.Start.Lng,
		EndLat:         req.End.Lat,
		EndLng:         req.End.Lng,
		Departure:      req.Departure,
		MaxItineraries: defaultMaxItineraries,
	})
	if err != nil {
		srv.logger.Warn("Route planning failed", "error", err)

		return nil, domainerrors.ErrRoutingFailed.WrapMessage(err.Error())
	}

	itineraries := planner.NormalizeResponse(raw)
	if len(itineraries) == 0 {
		return nil, domainerrors.ErrNoItineraries
	}

	dropped := len(raw) - len(itineraries)
	if dropped > 0 {
		srv.logger.Warn("Dropped unusable itineraries", "dropped", dropped, "total", len(raw))
	}

	return &usecase.PlanResult{
		Itineraries: itineraries,
		Dropped:     dropped,
	}, nil
}
