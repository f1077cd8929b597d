package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a geographic point in IEEE double-precision degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to an orb.Point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// IsFinite reports whether both components are finite numbers.
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Bounds is the minimal axis-aligned rectangle containing a coordinate set.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// BoundsFromOrb converts an orb.Bound into the entity representation.
func BoundsFromOrb(b orb.Bound) *Bounds {
	return &Bounds{
		MinLat: b.Min[1],
		MinLng: b.Min[0],
		MaxLat: b.Max[1],
		MaxLng: b.Max[0],
	}
}

// Bound converts back to an orb.Bound for geometry operations.
func (b *Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

// Center returns the midpoint of the rectangle.
func (b *Bounds) Center() Coordinate {
	center := b.Bound().Center()

	return Coordinate{Lat: center[1], Lng: center[0]}
}
