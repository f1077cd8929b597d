package onemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLatLng(t *testing.T) {
	tests := []struct {
		name    string
		doc     map[string]any
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{
			name:    "upper case string fields",
			doc:     map[string]any{"LATITUDE": "1.29337", "LONGITUDE": "103.85206"},
			wantLat: 1.29337,
			wantLng: 103.85206,
			wantOK:  true,
		},
		{
			name:    "lower case numeric fields",
			doc:     map[string]any{"lat": 1.2931, "lng": 103.852},
			wantLat: 1.2931,
			wantLng: 103.852,
			wantOK:  true,
		},
		{
			name: "geojson geometry with lng first",
			doc: map[string]any{
				"geometry": map[string]any{
					"type":        "Point",
					"coordinates": []any{103.852, 1.2931},
				},
			},
			wantLat: 1.2931,
			wantLng: 103.852,
			wantOK:  true,
		},
		{
			name: "elastic hit nested under _source",
			doc: map[string]any{
				"_id":     "abc",
				"_source": map[string]any{"latitude": "1.2931", "longitude": "103.852"},
			},
			wantLat: 1.2931,
			wantLng: 103.852,
			wantOK:  true,
		},
		{
			name:   "no usable coordinate",
			doc:    map[string]any{"SEARCHVAL": "SOMEWHERE"},
			wantOK: false,
		},
		{
			name:   "non numeric strings",
			doc:    map[string]any{"LATITUDE": "north", "LONGITUDE": "east"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := extractLatLng(tt.doc)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, lat, 1e-9)
				assert.InDelta(t, tt.wantLng, lng, 1e-9)
			}
		})
	}
}

func TestPickString(t *testing.T) {
	doc := map[string]any{"SEARCHVAL": "CITY HALL MRT", "ADDRESS": ""}

	assert.Equal(t, "CITY HALL MRT", pickString(doc, nameKeys))
	assert.Equal(t, "", pickString(doc, addressKeys))
}
