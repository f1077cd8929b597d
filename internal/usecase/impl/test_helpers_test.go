package impl

import (
	"encoding/json"
	"io"
	"log/slog"

	"transit/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func coordinate(lat, lng float64) entity.Coordinate {
	return entity.Coordinate{Lat: lat, Lng: lng}
}

func newTestItinerary(key string) *entity.NormalizedItinerary {
	return &entity.NormalizedItinerary{
		Key: key,
		Coordinates: []entity.Coordinate{
			{Lat: 1.30, Lng: 103.85},
			{Lat: 1.31, Lng: 103.86},
		},
		Summary: entity.TripSummary{
			Minutes:   30,
			Transfers: 1,
			Fare:      entity.NewScalarFare("1.75"),
		},
		Raw: json.RawMessage(`{"duration":1800}`),
	}
}
