package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FareKind tags the shape a fare value arrived in. The routing API emits fares
// as a bare string, a bare number, or a structured object depending on the
// itinerary; the kind is recorded instead of probing fields downstream.
type FareKind int

const (
	// FareAbsent means the payload carried no fare at all.
	FareAbsent FareKind = iota
	// FareScalar is a string or numeric fare, kept as its literal text.
	FareScalar
	// FareStructured is an object-shaped fare, kept verbatim.
	FareStructured
)

// FareValue is an opaque passthrough of the routing API's fare field. The raw
// bytes are preserved exactly so that persisted snapshots and API responses
// re-emit what the upstream service sent.
type FareValue struct {
	kind   FareKind
	scalar string
	raw    json.RawMessage
}

// NewScalarFare builds a scalar fare, mainly for tests and fixtures.
func NewScalarFare(text string) FareValue {
	quoted, _ := json.Marshal(text)

	return FareValue{kind: FareScalar, scalar: text, raw: quoted}
}

// Kind reports which shape the fare arrived in.
func (f FareValue) Kind() FareKind { return f.kind }

// Raw returns the verbatim upstream bytes, or nil when absent.
func (f FareValue) Raw() json.RawMessage { return f.raw }

// UnmarshalJSON accepts string, number, or object shapes. Anything else
// (including JSON null) is treated as absent rather than an error.
func (f *FareValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = FareValue{}

		return nil
	}

	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = FareValue{raw: raw}

			return nil
		}
		*f = FareValue{kind: FareScalar, scalar: s, raw: raw}
	case '{':
		*f = FareValue{kind: FareStructured, raw: raw}
	case '[', 't', 'f':
		// Arrays and booleans are not a known fare shape; keep the bytes
		// but render as unavailable.
		*f = FareValue{raw: raw}
	default:
		// Bare number.
		*f = FareValue{kind: FareScalar, scalar: trimmed, raw: raw}
	}

	return nil
}

// MarshalJSON re-emits the upstream bytes verbatim; absent fares marshal as null.
func (f FareValue) MarshalJSON() ([]byte, error) {
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}

	return f.raw, nil
}

// Render produces a display string for any fare shape. Scalars render as-is,
// structured fares as compact JSON, everything else as "not available".
func (f FareValue) Render() string {
	switch f.kind {
	case FareScalar:
		if strings.TrimSpace(f.scalar) == "" {
			return "not available"
		}

		return f.scalar
	case FareStructured:
		var buf bytes.Buffer
		if err := json.Compact(&buf, f.raw); err != nil {
			return "not available"
		}

		return buf.String()
	default:
		return "not available"
	}
}
