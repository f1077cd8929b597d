package onemap

// Point extraction tolerates the several result shapes the provider has
// shipped over time: upper-case elastic fields, lower-case GeoJSON-ish
// records, and hits nested under _source.

var (
	latKeys = []string{"LATITUDE", "latitude", "lat", "LAT", "Y"}
	lngKeys = []string{"LONGITUDE", "longitude", "lng", "lon", "LONG", "X"}
)

// extractLatLng pulls a coordinate pair out of one search result document.
func extractLatLng(doc map[string]any) (lat, lng float64, ok bool) {
	if lat, ok = pickNumber(doc, latKeys); ok {
		if lng, ok = pickNumber(doc, lngKeys); ok {
			return lat, lng, true
		}
	}

	// GeoJSON geometry: coordinates are [lng, lat]
	if geometry, found := doc["geometry"].(map[string]any); found {
		if coords, found := geometry["coordinates"].([]any); found && len(coords) >= 2 {
			lng, lngOK := asNumber(coords[0])
			lat, latOK := asNumber(coords[1])
			if lngOK && latOK {
				return lat, lng, true
			}
		}
	}

	// Elastic hit with the document nested under _source
	if source, found := doc["_source"].(map[string]any); found {
		return extractLatLng(source)
	}

	return 0, 0, false
}

// pickString returns the first non-empty string among the candidate keys.
func pickString(doc map[string]any, keys []string) string {
	for _, key := range keys {
		if value, ok := doc[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

func pickNumber(doc map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		if value, ok := doc[key]; ok {
			if number, numOK := asNumber(value); numOK {
				return number, true
			}
		}
	}

	return 0, false
}

// asNumber accepts both JSON numbers and numeric strings, which the provider
// mixes freely.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		return parseFloat(v)
	default:
		return 0, false
	}
}
