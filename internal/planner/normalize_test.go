package planner

import (
	"encoding/json"
	"testing"

	"transit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePolyline carries a backtick, so the fixture is assembled from parts.
const referencePolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

// Two short legs that share a boundary point, so the combined sequence carries
// an adjacent duplicate.
var fixtureItinerary = `{
	"startTime": 1700000000000,
	"duration": 1860,
	"transfers": 1,
	"fare": "1.75",
	"legs": [
		{
			"mode": "WALK",
			"from": {"name": "Origin"},
			"to": {"name": "Stop A"},
			"distance": 250,
			"duration": 180,
			"legGeometry": {"points": "_p~iF~ps|U_ulLnnqC"}
		},
		{
			"mode": "SUBWAY",
			"route": "NS1",
			"from": {"name": "Stop A"},
			"to": {"name": "Stop B"},
			"distance": 4200,
			"duration": 1680,
			"legGeometry": {"points": "` + referencePolyline + `"}
		}
	]
}`

func TestNormalize_CombinesLegCoordinates(t *testing.T) {
	it, err := Normalize(json.RawMessage(fixtureItinerary))
	require.NoError(t, err)

	// 2 points from the first leg, 3 from the second, boundary duplicates kept.
	require.Len(t, it.Coordinates, 5)
	assert.InDelta(t, 38.5, it.Coordinates[0].Lat, 1e-5)
	assert.InDelta(t, 40.7, it.Coordinates[2].Lat, 1e-5)

	require.Len(t, it.Legs, 2)
	assert.True(t, it.Legs[0].IsWalk())
	assert.False(t, it.Legs[1].IsWalk())
	assert.Equal(t, "NS1", it.Legs[1].Route)
	assert.Equal(t, "Stop A", it.Legs[1].Origin)
}

func TestNormalize_Summary(t *testing.T) {
	it, err := Normalize(json.RawMessage(fixtureItinerary))
	require.NoError(t, err)

	assert.Equal(t, 31, it.Summary.Minutes) // round(1860/60)
	assert.Equal(t, 1, it.Summary.Transfers)
	assert.Equal(t, "1.75", it.Summary.Fare.Render())
	assert.Equal(t, "1700000000000_1860_2", it.Key)
}

func TestNormalize_Bounds(t *testing.T) {
	it, err := Normalize(json.RawMessage(fixtureItinerary))
	require.NoError(t, err)

	require.NotNil(t, it.Bounds)
	assert.InDelta(t, 38.5, it.Bounds.MinLat, 1e-5)
	assert.InDelta(t, 43.252, it.Bounds.MaxLat, 1e-5)
	assert.InDelta(t, -126.453, it.Bounds.MinLng, 1e-5)
	assert.InDelta(t, -120.2, it.Bounds.MaxLng, 1e-5)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := Normalize(json.RawMessage(fixtureItinerary))
	require.NoError(t, err)

	second, err := Normalize(json.RawMessage(fixtureItinerary))
	require.NoError(t, err)

	assert.Equal(t, first.Coordinates, second.Coordinates)
	assert.Equal(t, first.Bounds, second.Bounds)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Key, second.Key)
}

func TestNormalize_MissingLegs(t *testing.T) {
	it, err := Normalize(json.RawMessage(`{"duration": 0}`))
	require.NoError(t, err)

	assert.Empty(t, it.Legs)
	assert.Empty(t, it.Coordinates)
	assert.Nil(t, it.Bounds)
	assert.Equal(t, 0, it.Summary.Minutes)
	assert.Equal(t, 0, it.Summary.Transfers)
}

func TestNormalize_MalformedLegTolerated(t *testing.T) {
	payload := `{
		"duration": 600,
		"legs": [
			{"mode": "BUS", "legGeometry": {"points": "_p~iF"}},
			{"mode": "WALK", "legGeometry": {"points": "_p~iF~ps|U_ulLnnqC"}}
		]
	}`

	it, err := Normalize(json.RawMessage(payload))
	require.NoError(t, err)

	// The malformed first leg contributes zero points; the valid one survives.
	require.Len(t, it.Coordinates, 2)
	require.Len(t, it.Legs, 2)
	assert.InDelta(t, 38.5, it.Coordinates[0].Lat, 1e-5)
}

func TestNormalize_StructuredFarePassthrough(t *testing.T) {
	payload := `{"duration": 60, "fare": {"adult": "1.20", "currency": "SGD"}}`

	it, err := Normalize(json.RawMessage(payload))
	require.NoError(t, err)

	assert.Equal(t, entity.FareStructured, it.Summary.Fare.Kind())

	marshaled, err := json.Marshal(it.Summary.Fare)
	require.NoError(t, err)
	assert.JSONEq(t, `{"adult": "1.20", "currency": "SGD"}`, string(marshaled))
}

func TestNormalizeResponse_DropsUnparsable(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(fixtureItinerary),
		json.RawMessage(`"not an itinerary"`),
		json.RawMessage(`{"duration": 120, "legs": []}`),
	}

	normalized := NormalizeResponse(items)
	require.Len(t, normalized, 2)
	assert.Equal(t, "1700000000000_1860_2", normalized[0].Key)
	assert.Equal(t, "_120_0", normalized[1].Key)
}
