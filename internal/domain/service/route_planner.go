package service

import (
	"context"
	"encoding/json"
	"time"
)

// PlaceResult is a single geocoding hit returned by the place search provider.
type PlaceResult struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// RouteRequest describes a public-transit routing query between two points.
type RouteRequest struct {
	StartLat float64
	StartLng float64
	EndLat   float64
	EndLng   float64
	// Departure is the requested departure time. The zero value means "now".
	Departure time.Time
	// MaxItineraries caps how many alternatives the provider should return.
	MaxItineraries int
}

// RoutePlanner defines the interface for the external routing provider.
// PlanRoute returns itineraries as raw JSON documents so the normalization
// layer owns all interpretation of the provider payload.
type RoutePlanner interface {
	// SearchPlaces performs a free-text place search
	SearchPlaces(ctx context.Context, query string) ([]PlaceResult, error)

	// PlanRoute requests transit itineraries between two coordinates
	PlanRoute(ctx context.Context, req RouteRequest) ([]json.RawMessage, error)
}
