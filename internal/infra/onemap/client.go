// Package onemap implements the routing provider contract against the OneMap
// public transit routing and place search APIs.
package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"transit/config"
	"transit/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	searchPath  = "/api/common/elastic/search"
	routingPath = "/api/public/routingsvc/route"

	// Provider date and time formats for the routing endpoint.
	routeDateLayout = "01-02-2006"
	routeTimeLayout = "15:04:05"

	defaultTimeout = 30 * time.Second
)

var (
	nameKeys    = []string{"SEARCHVAL", "searchVal", "name", "NAME"}
	addressKeys = []string{"ADDRESS", "address", "ROAD_NAME"}
)

// client implements the RoutePlanner interface against OneMap.
type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a OneMap-backed route planner.
func NewClient(cfg *config.OneMapConfig, logger *slog.Logger) service.RoutePlanner {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SearchPlaces performs a free-text place search.
func (c *client) SearchPlaces(ctx context.Context, query string) ([]service.PlaceResult, error) {
	params := url.Values{}
	params.Set("searchVal", query)
	params.Set("returnGeom", "Y")
	params.Set("getAddrDetails", "Y")
	params.Set("pageNum", "1")

	body, err := c.get(ctx, searchPath, params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Found   int              `json:"found"`
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode search response")
	}

	results := make([]service.PlaceResult, 0, len(payload.Results))
	for _, doc := range payload.Results {
		lat, lng, ok := extractLatLng(doc)
		if !ok {
			// Results without a usable coordinate cannot be routed to.
			continue
		}

		results = append(results, service.PlaceResult{
			Name:    pickString(doc, nameKeys),
			Address: pickString(doc, addressKeys),
			Lat:     lat,
			Lng:     lng,
		})
	}

	c.logger.Debug("Place search completed",
		slog.String("query", query),
		slog.Int("found", payload.Found),
		slog.Int("usable", len(results)),
	)

	return results, nil
}

// PlanRoute requests public transit itineraries between two coordinates.
func (c *client) PlanRoute(ctx context.Context, req service.RouteRequest) ([]json.RawMessage, error) {
	departure := req.Departure
	if departure.IsZero() {
		departure = time.Now()
	}

	maxItineraries := req.MaxItineraries
	if maxItineraries <= 0 {
		maxItineraries = 3
	}

	params := url.Values{}
	params.Set("start", formatPoint(req.StartLat, req.StartLng))
	params.Set("end", formatPoint(req.EndLat, req.EndLng))
	params.Set("routeType", "pt")
	params.Set("date", departure.Format(routeDateLayout))
	params.Set("time", departure.Format(routeTimeLayout))
	params.Set("mode", "TRANSIT")
	params.Set("numItineraries", strconv.Itoa(maxItineraries))

	body, err := c.get(ctx, routingPath, params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Plan struct {
			Itineraries []json.RawMessage `json:"itineraries"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode routing response")
	}

	c.logger.Debug("Route planning completed",
		slog.Int("itineraries", len(payload.Plan.Itineraries)),
	)

	return payload.Plan.Itineraries, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("onemap returned non-success status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

func formatPoint(lat, lng float64) string {
	return fmt.Sprintf("%f,%f", lat, lng)
}

func parseFloat(s string) (float64, bool) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
