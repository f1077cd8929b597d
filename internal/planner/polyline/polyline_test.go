package polyline

import (
	"testing"

	"transit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference example from the polyline algorithm documentation.
const referenceEncoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecode_Reference(t *testing.T) {
	coords, err := Decode(referenceEncoded)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	expected := []entity.Coordinate{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	for i, want := range expected {
		assert.InDelta(t, want.Lat, coords[i].Lat, 1e-5)
		assert.InDelta(t, want.Lng, coords[i].Lng, 1e-5)
	}
}

func TestDecode_Empty(t *testing.T) {
	coords, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, coords)
}

func TestDecode_Truncated(t *testing.T) {
	// Strip the final byte so the last longitude varint never terminates.
	_, err := Decode(referenceEncoded[:len(referenceEncoded)-1])
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_OutOfRangeByte(t *testing.T) {
	_, err := Decode("_p~iF\x01~ps|U")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "out of range")
}

func TestDecode_UnpairedLatitude(t *testing.T) {
	// "_p~iF" is exactly one complete delta, leaving no longitude.
	_, err := Decode("_p~iF")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestEncode_RoundTrip(t *testing.T) {
	coords, err := Decode(referenceEncoded)
	require.NoError(t, err)

	assert.Equal(t, referenceEncoded, Encode(coords))
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
}

func TestDecode_Deterministic(t *testing.T) {
	first, err := Decode(referenceEncoded)
	require.NoError(t, err)

	second, err := Decode(referenceEncoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
