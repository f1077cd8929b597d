// Package planner turns raw routing-service payloads into normalized,
// map-renderable itineraries with stable identity keys.
package planner

import (
	"transit/internal/domain/entity"
)

// RawPlace is the origin or destination descriptor on a raw leg.
type RawPlace struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// RawLeg is one segment of a raw itinerary as the routing service emits it.
type RawLeg struct {
	Mode        string   `json:"mode"`
	Route       string   `json:"route,omitempty"`
	From        RawPlace `json:"from"`
	To          RawPlace `json:"to"`
	StartTime   int64    `json:"startTime,omitempty"`
	EndTime     int64    `json:"endTime,omitempty"`
	Distance    float64  `json:"distance,omitempty"`
	Duration    float64  `json:"duration,omitempty"`
	LegGeometry struct {
		Points string `json:"points"`
		Length int    `json:"length,omitempty"`
	} `json:"legGeometry"`
}

// RawItinerary is one proposed trip plan as the routing service emits it.
// Duration is in seconds, StartTime/EndTime in epoch milliseconds. Pointer
// fields distinguish absent values from zeroes for key derivation.
type RawItinerary struct {
	StartTime *int64           `json:"startTime,omitempty"`
	EndTime   *int64           `json:"endTime,omitempty"`
	Duration  *float64         `json:"duration,omitempty"`
	Transfers *int             `json:"transfers,omitempty"`
	Fare      entity.FareValue `json:"fare,omitempty"`
	Legs      []RawLeg         `json:"legs,omitempty"`
}
