// Package polyline implements the encoded polyline algorithm used by mapping
// and routing services: signed coordinate deltas, zigzag sign folding, 5-bit
// groups with a continuation bit, offset by 63 into printable ASCII, scaled by
// 1e-5 degrees per unit.
package polyline

import (
	"fmt"

	"transit/internal/domain/entity"
)

const precision = 1e-5

// DecodeError reports malformed polyline input. Empty input is never an
// error; it decodes to an empty sequence.
type DecodeError struct {
	Pos    int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline: invalid input at byte %d: %s", e.Pos, e.Reason)
}

// Decode converts an encoded polyline string into its coordinate sequence.
// The output order matches travel order. Decoding is pure: the same input
// always yields the same sequence.
func Decode(encoded string) ([]entity.Coordinate, error) {
	if encoded == "" {
		return nil, nil
	}

	coords := make([]entity.Coordinate, 0, len(encoded)/4)
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		latDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += latDelta

		if index >= len(encoded) {
			return nil, &DecodeError{Pos: index, Reason: "unpaired latitude delta"}
		}

		lngDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lng += lngDelta

		coords = append(coords, entity.Coordinate{
			Lat: float64(lat) * precision,
			Lng: float64(lng) * precision,
		})
	}

	return coords, nil
}

// decodeValue reads one varint-encoded, zigzag-folded delta starting at index.
func decodeValue(encoded string, index int) (int, int, error) {
	shift, result := 0, 0

	for {
		if index >= len(encoded) {
			return 0, index, &DecodeError{Pos: index, Reason: "truncated varint group"}
		}

		b := int(encoded[index]) - 63
		if b < 0 || b > 0x3f {
			return 0, index, &DecodeError{Pos: index, Reason: fmt.Sprintf("byte %q out of range", encoded[index])}
		}
		index++
		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}

	return result >> 1, index, nil
}

// Encode converts a coordinate sequence back into an encoded polyline string.
// Encode(Decode(s)) reproduces s for any well-formed input.
func Encode(coords []entity.Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	encoded := make([]byte, 0, len(coords)*6)
	prevLat, prevLng := 0, 0

	for _, c := range coords {
		lat := int(round(c.Lat / precision))
		lng := int(round(c.Lng / precision))

		encoded = appendValue(encoded, lat-prevLat)
		encoded = appendValue(encoded, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return string(encoded)
}

func appendValue(dst []byte, delta int) []byte {
	value := delta << 1
	if delta < 0 {
		value = ^value
	}

	for value >= 0x20 {
		dst = append(dst, byte((0x20|(value&0x1f))+63))
		value >>= 5
	}

	return append(dst, byte(value+63))
}

func round(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}

	return float64(int(v + 0.5))
}
