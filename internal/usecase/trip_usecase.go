package usecase

import (
	"context"
	"time"

	"transit/internal/domain/entity"
	"transit/internal/domain/service"
)

// PlanRequest describes a trip planning query from the API layer.
type PlanRequest struct {
	Start     entity.Coordinate
	End       entity.Coordinate
	Departure time.Time
}

// PlanResult carries the normalized itineraries for one planning query.
type PlanResult struct {
	Itineraries []entity.NormalizedItinerary `json:"itineraries"`
	// Dropped counts provider itineraries that could not be normalized
	Dropped int `json:"dropped,omitempty"`
}

// TripUsecase defines the interface for trip planning use cases
type TripUsecase interface {
	// SearchPlaces performs a free-text place search against the routing provider
	SearchPlaces(ctx context.Context, query string) ([]service.PlaceResult, error)

	// PlanTrip requests itineraries between two coordinates and normalizes them
	// for rendering. Itineraries the provider returns in an unusable shape are
	// dropped rather than failing the whole request.
	PlanTrip(ctx context.Context, req PlanRequest) (*PlanResult, error)
}
