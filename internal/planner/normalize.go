package planner

import (
	"encoding/json"
	"math"

	"transit/internal/domain/entity"
	"transit/internal/planner/polyline"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Normalize turns one raw itinerary payload into its normalized form: the
// concatenated decoded coordinates of every leg in travel order, the bounding
// rectangle over those coordinates, a display summary, and the identity key.
//
// A leg whose geometry fails to decode contributes zero coordinates; it never
// aborts the itinerary. Adjacent duplicate points at leg boundaries are kept.
// The function is pure: the same payload always yields the same result.
func Normalize(raw json.RawMessage) (*entity.NormalizedItinerary, error) {
	var it RawItinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, errors.Wrap(err, "unmarshal itinerary")
	}

	legs := make([]entity.LegSummary, 0, len(it.Legs))
	var coords []entity.Coordinate

	for _, leg := range it.Legs {
		legs = append(legs, entity.LegSummary{
			Mode:        leg.Mode,
			Route:       leg.Route,
			Origin:      leg.From.Name,
			Destination: leg.To.Name,
			StartTime:   leg.StartTime,
			EndTime:     leg.EndTime,
			Distance:    leg.Distance,
			Duration:    leg.Duration,
			Points:      leg.LegGeometry.Points,
		})

		decoded, err := polyline.Decode(leg.LegGeometry.Points)
		if err != nil {
			// Malformed leg geometry: the leg contributes no points.
			continue
		}
		coords = append(coords, decoded...)
	}

	frozen := make(json.RawMessage, len(raw))
	copy(frozen, raw)

	return &entity.NormalizedItinerary{
		Key:         KeyOf(&it),
		Legs:        legs,
		Coordinates: coords,
		Bounds:      boundsOf(coords),
		Summary:     summarize(&it),
		Raw:         frozen,
	}, nil
}

// NormalizeResponse normalizes a whole routing response. Itineraries that are
// structurally unparsable are dropped; the rest of the list survives.
func NormalizeResponse(itineraries []json.RawMessage) []entity.NormalizedItinerary {
	normalized := make([]entity.NormalizedItinerary, 0, len(itineraries))

	for _, raw := range itineraries {
		it, err := Normalize(raw)
		if err != nil {
			continue
		}
		normalized = append(normalized, *it)
	}

	return normalized
}

func summarize(it *RawItinerary) entity.TripSummary {
	var minutes int
	if it.Duration != nil {
		minutes = int(math.Round(*it.Duration / 60))
	}

	var transfers int
	if it.Transfers != nil {
		transfers = *it.Transfers
	}

	return entity.TripSummary{
		Minutes:   minutes,
		Fare:      it.Fare,
		Transfers: transfers,
	}
}

func boundsOf(coords []entity.Coordinate) *entity.Bounds {
	if len(coords) == 0 {
		return nil
	}

	points := make(orb.MultiPoint, len(coords))
	for i, c := range coords {
		points[i] = c.Point()
	}

	return entity.BoundsFromOrb(points.Bound())
}
