package onemap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transit/config"
	"transit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.RoutePlanner {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(&config.OneMapConfig{
		BaseURL: server.URL,
		Token:   "test-token",
	}, logger)
}

func TestClient_SearchPlaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "city hall", r.URL.Query().Get("searchVal"))
		assert.Equal(t, "Y", r.URL.Query().Get("returnGeom"))
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"found": 3,
			"results": [
				{"SEARCHVAL": "CITY HALL MRT", "ADDRESS": "150 NORTH BRIDGE RD", "LATITUDE": "1.29337", "LONGITUDE": "103.85206"},
				{"name": "City Hall", "lat": 1.2931, "lng": 103.852},
				{"SEARCHVAL": "NO COORDS HERE"}
			]
		}`))
	})

	results, err := client.SearchPlaces(context.Background(), "city hall")
	require.NoError(t, err)

	// The result without a coordinate is dropped.
	require.Len(t, results, 2)
	assert.Equal(t, "CITY HALL MRT", results[0].Name)
	assert.Equal(t, "150 NORTH BRIDGE RD", results[0].Address)
	assert.InDelta(t, 1.29337, results[0].Lat, 1e-9)
	assert.InDelta(t, 103.85206, results[0].Lng, 1e-9)
	assert.Equal(t, "City Hall", results[1].Name)
}

func TestClient_PlanRoute(t *testing.T) {
	departure := time.Date(2026, time.March, 14, 8, 30, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, routingPath, r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "1.293100,103.852000", query.Get("start"))
		assert.Equal(t, "1.364400,103.991500", query.Get("end"))
		assert.Equal(t, "pt", query.Get("routeType"))
		assert.Equal(t, "TRANSIT", query.Get("mode"))
		assert.Equal(t, "03-14-2026", query.Get("date"))
		assert.Equal(t, "08:30:00", query.Get("time"))
		assert.Equal(t, "3", query.Get("numItineraries"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"plan": {
				"itineraries": [
					{"startTime": 1700000000000, "duration": 1800, "legs": []},
					{"startTime": 1700000600000, "duration": 2100, "legs": []}
				]
			}
		}`))
	})

	itineraries, err := client.PlanRoute(context.Background(), service.RouteRequest{
		StartLat:  1.2931,
		StartLng:  103.852,
		EndLat:    1.3644,
		EndLng:    103.9915,
		Departure: departure,
	})
	require.NoError(t, err)
	require.Len(t, itineraries, 2)
	assert.Contains(t, string(itineraries[0]), `"duration": 1800`)
}

func TestClient_PlanRoute_EmptyPlan(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"plan": {"itineraries": []}}`))
	})

	itineraries, err := client.PlanRoute(context.Background(), service.RouteRequest{
		StartLat: 1.2931, StartLng: 103.852, EndLat: 1.3644, EndLng: 103.9915,
	})
	require.NoError(t, err)
	assert.Empty(t, itineraries)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.SearchPlaces(context.Background(), "city hall")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
