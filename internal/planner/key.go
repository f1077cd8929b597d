package planner

import (
	"strconv"
	"strings"
)

// KeyOf derives the identity string for a raw itinerary from its invariant
// fields: start time, duration, and leg count, joined by underscores. Missing
// fields render as empty segments.
//
// The key is an equality proxy for favoriting and deduplication only. Two
// itineraries sharing start time, duration, and leg count get the same key
// even when fares or leg details differ; it is a weak identity by design, not
// a content hash.
func KeyOf(raw *RawItinerary) string {
	var b strings.Builder

	if raw.StartTime != nil {
		b.WriteString(strconv.FormatInt(*raw.StartTime, 10))
	}
	b.WriteByte('_')

	if raw.Duration != nil {
		b.WriteString(strconv.FormatFloat(*raw.Duration, 'f', -1, 64))
	}
	b.WriteByte('_')

	if raw.Legs != nil {
		b.WriteString(strconv.Itoa(len(raw.Legs)))
	}

	return b.String()
}
