package planner

import (
	"testing"

	"transit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ptrI64(v int64) *int64     { return &v }
func ptrF64(v float64) *float64 { return &v }

func TestKeyOf_InvariantFields(t *testing.T) {
	a := &RawItinerary{
		StartTime: ptrI64(1700000000000),
		Duration:  ptrF64(1800),
		Legs:      make([]RawLeg, 3),
		Fare:      entity.NewScalarFare("1.55"),
	}
	b := &RawItinerary{
		StartTime: ptrI64(1700000000000),
		Duration:  ptrF64(1800),
		Legs:      []RawLeg{{Mode: "BUS"}, {Mode: "WALK"}, {Mode: "SUBWAY"}},
		Fare:      entity.NewScalarFare("2.10"),
	}

	assert.Equal(t, "1700000000000_1800_3", KeyOf(a))
	// Same (startTime, duration, legCount) means same key regardless of
	// fares or leg detail.
	assert.Equal(t, KeyOf(a), KeyOf(b))
}

func TestKeyOf_MissingFields(t *testing.T) {
	assert.Equal(t, "__", KeyOf(&RawItinerary{}))
	assert.Equal(t, "__0", KeyOf(&RawItinerary{Legs: []RawLeg{}}))
	assert.Equal(t, "_90_", KeyOf(&RawItinerary{Duration: ptrF64(90)}))
}

func TestKeyOf_FractionalDuration(t *testing.T) {
	it := &RawItinerary{Duration: ptrF64(1800.5), Legs: make([]RawLeg, 1)}
	assert.Equal(t, "_1800.5_1", KeyOf(it))
}
