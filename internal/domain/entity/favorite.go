package entity

import (
	"encoding/json"
	"time"
)

// FavoriteEntry is a frozen snapshot of an itinerary at the moment it was
// saved. It is owned exclusively by the favorites collection: created on
// favorite, destroyed on unfavorite, never synced back to later plans that
// happen to share its key.
type FavoriteEntry struct {
	Key         string          `json:"key"`
	SavedAt     time.Time       `json:"savedAt"`
	Summary     TripSummary     `json:"summary"`
	Itinerary   json.RawMessage `json:"itinerary"` // verbatim raw itinerary at save time
	Coordinates []Coordinate    `json:"coordinates"`
}

// NewFavoriteEntry snapshots a normalized itinerary into a favorite.
func NewFavoriteEntry(it *NormalizedItinerary, savedAt time.Time) FavoriteEntry {
	raw := make(json.RawMessage, len(it.Raw))
	copy(raw, it.Raw)

	coords := make([]Coordinate, len(it.Coordinates))
	copy(coords, it.Coordinates)

	return FavoriteEntry{
		Key:         it.Key,
		SavedAt:     savedAt,
		Summary:     it.Summary,
		Itinerary:   raw,
		Coordinates: coords,
	}
}
