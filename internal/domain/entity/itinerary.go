package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// LegSummary is one uninterrupted segment of an itinerary: a single transit
// ride or a walk. Immutable once decoded from the routing payload.
type LegSummary struct {
	Mode        string  `json:"mode"`
	Route       string  `json:"route,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
	StartTime   int64   `json:"startTime,omitempty"` // epoch milliseconds
	EndTime     int64   `json:"endTime,omitempty"`   // epoch milliseconds
	Distance    float64 `json:"distance,omitempty"`  // meters
	Duration    float64 `json:"duration,omitempty"`  // seconds
	Points      string  `json:"points,omitempty"`    // encoded polyline, may be empty
}

// IsWalk reports whether the leg is a walking segment. Unknown modes are
// treated as transit-like.
func (l LegSummary) IsWalk() bool {
	return strings.EqualFold(l.Mode, "walk")
}

// Departs returns the leg start as a time.Time, zero when unknown.
func (l LegSummary) Departs() time.Time {
	if l.StartTime == 0 {
		return time.Time{}
	}

	return time.UnixMilli(l.StartTime)
}

// TripSummary is the derived per-itinerary digest shown in selection lists.
type TripSummary struct {
	Minutes   int       `json:"minutes"`
	Fare      FareValue `json:"fare"`
	Transfers int       `json:"transfers"`
}

// NormalizedItinerary is the map-renderable, comparable form of one raw
// routing itinerary. Created fresh on every routing response and never
// mutated; favoriting copies it by value.
type NormalizedItinerary struct {
	Key         string          `json:"key"`
	Legs        []LegSummary    `json:"legs"`
	Coordinates []Coordinate    `json:"coordinates"`
	Bounds      *Bounds         `json:"bounds,omitempty"`
	Summary     TripSummary     `json:"summary"`
	Raw         json.RawMessage `json:"-"` // frozen upstream payload, kept for favoriting
}
